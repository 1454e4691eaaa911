package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/RikuXan/mymuesli-analyzer/config"
	httpDelivery "github.com/RikuXan/mymuesli-analyzer/internal/delivery/http"
	"github.com/RikuXan/mymuesli-analyzer/internal/infrastructure/cache"
	"github.com/RikuXan/mymuesli-analyzer/internal/infrastructure/mymuesli"
	"github.com/RikuXan/mymuesli-analyzer/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting mymuesli-analyzer v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Vendor: %s (brand=%s, marker=%s)", cfg.Vendor.BaseURL, cfg.Vendor.BrandKey, cfg.Vendor.MarkerTag)

	client := mymuesli.NewClient(cfg.Vendor.BaseURL, cfg.Vendor.APIKey, cfg.Vendor.RequestsPerHour)

	cacheDir := filepath.Join(cfg.Cache.Dir, "ingredients")
	store, err := cache.NewIngredientStore(cacheDir)
	if err != nil {
		log.Fatalf("Failed to open ingredient cache: %v", err)
	}
	log.Printf("Ingredient cache: %s", cacheDir)

	// The classifier is a startup dependency of every resolution; build it
	// eagerly so a broken index page fails the process, not a request.
	classifier, err := usecase.NewTypeClassifier(context.Background(), client)
	if err != nil {
		log.Fatalf("Failed to build type classifier: %v", err)
	}

	resolver := usecase.NewIngredientResolver(client, store, classifier)
	assembler := usecase.NewAssembler(cfg.Vendor.BaseURL, resolver)
	driver := usecase.NewCatalogJoinDriver(client, assembler, cfg.Vendor.BrandKey, cfg.Vendor.MarkerTag)

	handler := httpDelivery.NewHandler(driver, classifier)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
