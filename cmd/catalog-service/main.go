package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/api"
	"github.com/splashmix/catalog-service/internal/config"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/services"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Configurar logging
	logger := setupLogger(cfg)
	logger.Info("Starting Splashmix catalog service...")

	// Configurar modo de Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar a la base de datos
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	// Inicializar servicios
	paisService := services.NewPaisService(db, logger)
	catalogoService := services.NewCatalogoService(db, logger)
	pertenenciaService := services.NewPertenenciaService(db, logger)
	textoService := services.NewTextoService(db, paisService, logger)
	precioService := services.NewPrecioService(db, paisService, logger)

	// Inicializar API
	apiHandler := api.NewAPI(
		catalogoService,
		paisService,
		pertenenciaService,
		textoService,
		precioService,
		logger,
	)

	// Configurar router
	router := setupRouter(apiHandler, db, cfg, logger)

	// Crear servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Canal para señales de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Iniciar servidor en goroutine
	go func() {
		logger.Infof("Server starting on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	// Esperar señal de terminación
	<-quit
	logger.Info("Shutting down server...")

	// Contexto con timeout para shutdown graceful
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown graceful del servidor
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	// Configurar nivel de log
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configurar formato
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// setupRouter configura el router principal
func setupRouter(apiHandler *api.API, db *database.DB, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	router := gin.New()

	// Middleware global
	router.Use(gin.Recovery())
	router.Use(api.RequestID())
	router.Use(api.RequestLogger(logger))

	// Middleware de CORS para desarrollo
	if cfg.IsDevelopment() {
		router.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}

			c.Next()
		})
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		dbStatus := "connected"
		code := http.StatusOK
		if err := db.HealthCheck(); err != nil {
			status = "unhealthy"
			dbStatus = "disconnected"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"database":  dbStatus,
			"timestamp": time.Now().UTC(),
			"service":   "catalog-service",
		})
	})

	// Conjuntos
	router.GET("/conjuntos", apiHandler.ListConjuntos)
	router.GET("/conjuntos/:id", apiHandler.GetConjunto)

	// Países
	router.GET("/paises", apiHandler.ListPaises)
	router.GET("/paises/:codigo", apiHandler.GetPais)

	// Tipos de producto
	router.GET("/tipos-producto", apiHandler.ListTiposProducto)
	router.GET("/tipos-producto/:id", apiHandler.GetTipoProducto)

	// Productos
	router.GET("/productos", apiHandler.ListProductos)
	router.GET("/productos/:id", apiHandler.GetProducto)

	// Pertenencias
	router.GET("/pertenencias", apiHandler.ListPertenencias)
	router.GET("/pertenencias/conjunto/:conjunto_id", apiHandler.ListPertenenciasByConjunto)
	router.GET("/pertenencias/:id", apiHandler.GetPertenencia)

	// Textos
	router.GET("/textos", apiHandler.ListTextos)
	router.GET("/textos/pais/:codigo", apiHandler.ListTextosByPais)
	router.GET("/textos/:id", apiHandler.GetTexto)

	// Precios
	router.GET("/precios", apiHandler.ListPrecios)
	router.GET("/precios/pertenencia/:pertenencia_id", apiHandler.ListPreciosByPertenencia)
	router.GET("/precios/pais/:codigo", apiHandler.ListPreciosByPais)
	router.GET("/precios/:id", apiHandler.GetPrecio)

	return router
}
