package main

import (
	"flag"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/config"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/models"
	"github.com/splashmix/catalog-service/internal/services"
)

// Semillas de precios por ambiente: el identificador del proveedor de pagos y
// la cantidad de imágenes que liga cada precio con su producto.
var preciosSandbox = []services.PrecioSeed{
	{PriceID: "price_1SDXvuROVpWRmEfBsAGp37kf", Imagenes: 1},
	{PriceID: "price_1S1GF3ROVpWRmEfB6hRtG5Cy", Imagenes: 10},
	{PriceID: "price_1S1GLEROVpWRmEfBVlVTsuPC", Imagenes: 40},
	{PriceID: "price_1S1GMrROVpWRmEfBVqnTwG9g", Imagenes: 80},
	{PriceID: "price_1S1GOSROVpWRmEfBvnjSrhQ9", Imagenes: 320},
	{PriceID: "price_1S1GQPROVpWRmEfBYv6SoeuO", Imagenes: 1000},
}

var preciosProduction = []services.PrecioSeed{
	{PriceID: "price_1SDYG3IYi36CbmfWqVYGm8LA", Imagenes: 1},
	{PriceID: "price_1SBRWMIYi36CbmfWEVM1T8nC", Imagenes: 10},
	{PriceID: "price_1SBRSzIYi36CbmfWDtRx2ic7", Imagenes: 40},
	{PriceID: "price_1SBRVNIYi36CbmfWsQyoKpTq", Imagenes: 80},
	{PriceID: "price_1SBRRkIYi36CbmfWZwqCQaAk", Imagenes: 320},
	{PriceID: "price_1SBPjIIYi36CbmfWOkNXYLcl", Imagenes: 1000},
}

// Carga las semillas del catálogo: conjunto y tipo base, países y textos
// desde paises.xlsx, productos y pertenencias desde productos.xlsx, y los
// precios semilla del ambiente indicado. Todas las cargas son idempotentes.
func main() {
	var (
		paisesPath    = flag.String("paises", "", "ruta a paises.xlsx")
		productosPath = flag.String("productos", "", "ruta a productos.xlsx")
		precios       = flag.String("precios", "", "cargar precios semilla: sandbox o production")
		pais          = flag.String("pais", "MXN", "país de los precios semilla")
		tipo          = flag.Int("tipo", 1, "tipo de producto para los textos importados")
		seedBase      = flag.Bool("seed-base", false, "asegurar conjunto y tipo de producto base")
	)
	flag.Parse()

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

	importer := services.NewImportService(db, logger)

	if *seedBase {
		if err := importer.SeedConjunto("splashmix", "normal"); err != nil {
			logger.Fatalf("Error seeding conjunto: %v", err)
		}
		if err := importer.SeedTipoProducto("imagen", "imagen"); err != nil {
			logger.Fatalf("Error seeding tipo de producto: %v", err)
		}
		logger.Info("Base conjunto and tipo de producto seeded")
	}

	if *paisesPath != "" {
		if _, err := importer.ImportPaises(*paisesPath, *tipo); err != nil {
			logger.Fatalf("Error importing paises: %v", err)
		}
	}

	if *productosPath != "" {
		if _, err := importer.ImportProductos(*productosPath); err != nil {
			logger.Fatalf("Error importing productos: %v", err)
		}
	}

	switch *precios {
	case "":
	case models.AmbienteSandbox:
		if _, err := importer.SeedPrecios(*pais, models.AmbienteSandbox, preciosSandbox); err != nil {
			logger.Fatalf("Error seeding precios: %v", err)
		}
	case models.AmbienteProduction:
		if _, err := importer.SeedPrecios(*pais, models.AmbienteProduction, preciosProduction); err != nil {
			logger.Fatalf("Error seeding precios: %v", err)
		}
	default:
		logger.Fatalf("Unknown precios ambiente: %s", *precios)
	}
}
