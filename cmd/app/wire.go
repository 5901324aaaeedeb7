//go:build wireinject
// +build wireinject

package main

import (
	"net/http"

	"github.com/google/wire"
	"github.com/mozzaworks/shift_service"
	"github.com/mozzaworks/shift_service/configs"
)

func InitializeApp() (*App, error) {
	wire.Build(
		configs.NewAppConfig,
		http.NewServeMux,
		NewCache,
		configs.NewDatabase,
		shift_service.NewRegister,
		NewApp,
	)

	return &App{}, nil
}
