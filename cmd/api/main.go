package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/justsurfingit/job-map-search/internal/config"
	"github.com/justsurfingit/job-map-search/internal/handlers"
	"github.com/justsurfingit/job-map-search/internal/server"
	"github.com/justsurfingit/job-map-search/internal/services"
	"github.com/justsurfingit/job-map-search/internal/views"
)

func main() {
	// 1. Load Environment Variables (.env is optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("=== Job Search Startup ===")
	log.Println("Adzuna endpoint: ", cfg.AdzunaBaseURL, "country:", cfg.AdzunaCountry)
	log.Println("Adzuna app id:   ", config.Mask(cfg.AdzunaAppID))
	log.Println("Adzuna timeout:  ", cfg.AdzunaTimeout)
	log.Println("Map zoom:        ", cfg.MapZoom)
	if cfg.MapboxToken == "" {
		log.Println("⚠️  MAPBOX_TOKEN is empty, map thumbnails will not load")
	} else {
		log.Println("Mapbox token:    ", config.Mask(cfg.MapboxToken))
	}
	log.Println("==========================")

	// 2. Initialize Core Services
	adzunaService := services.NewAdzunaService(cfg.AdzunaBaseURL, cfg.AdzunaCountry, cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaTimeout)
	mapService := services.NewMapService(cfg.MapboxToken, cfg.MapZoom)
	searchService := services.NewSearchService(adzunaService, mapService, views.NewRenderer())

	// 3. Page and script share one set of selectors
	page, err := views.NewPage(views.DefaultDOM, views.DefaultReveal, "/api/v1/search")
	if err != nil {
		log.Fatalf("Failed to build page: %v", err)
	}

	// 4. Initialize Handlers
	searchHandler := handlers.NewSearchHandler(searchService, page)
	assetHandler := handlers.NewAssetHandler(page)

	// 5. Setup Router & CORS
	srv, err := server.New(cfg.Addr(), cfg.CORSOrigins, searchHandler, assetHandler)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-sigChan
	log.Println("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
}
