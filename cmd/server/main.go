package main

import (
	"context"
	"log"

	"tebaba-backend/config"
	"tebaba-backend/internal/auth"
	"tebaba-backend/internal/database"
	"tebaba-backend/internal/handler"
	"tebaba-backend/internal/middleware"
	"tebaba-backend/internal/monitoring"
	"tebaba-backend/internal/repository"
	"tebaba-backend/internal/service"
	"tebaba-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer logger.L.Sync()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.SyncSchema(context.Background(), pool); err != nil {
			log.Fatalf("Failed to sync schema: %v", err)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	// Create/update payloads reject fields the schema does not know about.
	binding.EnableDecoderDisallowUnknownFields = true

	router := gin.New()
	router.Use(gin.Recovery(), middleware.AccessLog(), monitoring.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	userRepo := repository.NewUserRepository(pool)
	artistRepo := repository.NewArtistRepository(pool)
	packRepo := repository.NewPackRepository(pool)
	eventRepo := repository.NewEventRepository(pool)

	tokens := auth.NewTokenIssuer(cfg.SecretKey)
	authService := service.NewAuthService(userRepo, tokens, cfg.TokenTTL)
	artistService := service.NewArtistService(artistRepo)
	packService := service.NewPackService(packRepo)
	eventService := service.NewEventService(eventRepo)

	authn := middleware.Authenticate(authService)
	admin := middleware.RequireAdmin()

	api := router.Group("/api")
	handler.NewAuthHandler(authService).RegisterRoutes(api, authn)
	handler.NewArtistHandler(artistService).RegisterRoutes(api, authn, admin)
	handler.NewPackHandler(packService).RegisterRoutes(api, authn, admin)
	handler.NewEventHandler(eventService).RegisterRoutes(api, authn, admin)

	handler.NewHealthHandler(pool).RegisterRoutes(router)
	handler.NewOGHandler(eventService, cfg.SiteBaseURL).RegisterRoutes(router)
	if cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(monitoring.Handler()))
	}

	addr := cfg.Host + ":" + cfg.Port
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
