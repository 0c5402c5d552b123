package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labelwise/backend/config"
	httpDelivery "github.com/labelwise/backend/internal/delivery/http"
	"github.com/labelwise/backend/internal/infrastructure/cache"
	"github.com/labelwise/backend/internal/infrastructure/catalog"
	"github.com/labelwise/backend/internal/infrastructure/off"
	"github.com/labelwise/backend/internal/infrastructure/store"
	"github.com/labelwise/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Labelwise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	offClient := off.NewClient(cfg.Provider.BaseURL, cfg.Provider.UserAgent, cfg.Provider.Timeout)
	log.Printf("Provider: %s (timeout: %s)", cfg.Provider.BaseURL, cfg.Provider.Timeout)

	// Enable debug mode in development environment
	debug := cfg.Server.Environment == "development"
	if debug {
		offClient.SetDebug(true)
		log.Printf("Provider client debug mode enabled")
	}

	productCatalog := catalog.NewProductFile(cfg.Data.ProductCatalogPath)
	additiveCatalog := catalog.NewAdditiveFile(cfg.Data.AdditiveCatalogPath)
	log.Printf("Catalogs: products=%s additives=%s", cfg.Data.ProductCatalogPath, cfg.Data.AdditiveCatalogPath)

	submissionStore, err := store.NewFileStore(cfg.Data.SubmissionsPath)
	if err != nil {
		log.Fatalf("Failed to open submission store: %v", err)
	}

	// Initialize usecase layer
	scoreService := usecase.NewScoreService(
		memoryCache,
		productCatalog,
		additiveCatalog,
		offClient,
		usecase.ScoreServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scoreService, submissionStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
