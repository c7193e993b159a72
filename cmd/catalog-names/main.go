package main

import (
	"log"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/config"
	"github.com/splashmix/catalog-service/internal/database"
)

// Reconstruye el nombre derivado de todos los precios re-haciendo el join
// precio → pertenencia → conjunto/producto → tipo_producto.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	repo := database.NewPrecioRepository(db, logger)

	updated, err := repo.RecomputeNombres()
	if err != nil {
		logger.Fatalf("Error recomputing names: %v", err)
	}

	logger.Infof("Finished. Updated %d rows.", updated)
}
