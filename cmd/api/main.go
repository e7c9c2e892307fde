package main

import (
	"context"

	"sensitive-places-api/docs"
	"sensitive-places-api/internal/config"
	"sensitive-places-api/internal/handler"
	"sensitive-places-api/internal/provider"
	"sensitive-places-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Sensitive Places API
//	@version		1.0
//	@description	Finds sensitive places and betting shops around an Italian address.
//	@BasePath		/

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	config.SetupLogger(cfg)

	ctx := context.Background()

	// Place-search backend
	backend, closeBackend, err := provider.NewBackend(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create places backend")
	}
	defer closeBackend()

	readiness := provider.StartReadiness(ctx, backend, cfg.ProviderTimeout)

	// Initialize layers
	geoCodeService := service.NewGeoCodeService(backend, cfg.GeocodeCountry)
	nearbyService := service.NewNearbyService(backend, geoCodeService, service.NearbyOptions{
		SensitiveTags:  cfg.SensitiveTags,
		BettingTags:    cfg.BettingTags,
		MaxConcurrency: cfg.MaxConcurrentQueries,
	})
	sessions := handler.NewSessionStore(nearbyService, cfg.SessionTTL)

	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	nearbyHandler := handler.NewNearbyHandler(nearbyService, sessions, handler.RadiusBounds{
		Default: cfg.DefaultRadius,
		Min:     cfg.MinRadius,
		Max:     cfg.MaxRadius,
	})
	healthHandler := handler.NewHealthHandler(readiness)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", healthHandler.Health)
	r.GET("/nearby", nearbyHandler.Nearby)
	r.GET("/geocode", geoCodeHandler.GeoCode)
	r.GET("/categories", handler.Categories)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().
		Str("address", cfg.ServerAddress).
		Str("backend", cfg.PlacesBackend).
		Msg("starting server")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
