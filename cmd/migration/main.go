package main

import (
	"log"

	"github.com/mozzaworks/shift_service"
)

type Migration struct {
	Run func() error
}

func NewMigration(
	migrate shift_service.MigrationHandler,
	seed shift_service.SeedHandler,
) *Migration {
	return &Migration{
		Run: func() error {
			err := migrate()
			if err != nil {
				return err
			}

			return seed()
		},
	}
}

func main() {
	mig, err := InitializeMigration()
	if err != nil {
		panic(err)
	}

	err = mig.Run()
	if err != nil {
		panic(err)
	}

	log.Println("migration done")
}
