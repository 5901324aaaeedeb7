//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/mozzaworks/shift_service"
	"github.com/mozzaworks/shift_service/configs"
)

func InitializeMigration() (*Migration, error) {
	wire.Build(
		configs.NewAppConfig,
		configs.NewDatabase,
		shift_service.NewMigrationHandler,
		shift_service.NewSeedHandler,
		NewMigration,
	)

	return &Migration{}, nil
}
