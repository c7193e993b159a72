package main

import (
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/splashmix/catalog-service/internal/config"
)

// Aplica las migraciones de esquema del catálogo. Con -down revierte la
// última migración en lugar de avanzar.
func main() {
	var (
		path = flag.String("path", "migrations", "directorio de migraciones")
		down = flag.Bool("down", false, "revertir la última migración")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	m, err := migrate.New("file://"+*path, cfg.GetMigrateURL())
	if err != nil {
		log.Fatalf("Error initializing migrations: %v", err)
	}
	defer m.Close()

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Error running migrations: %v", err)
	}

	log.Println("Migrations applied successfully")
}
