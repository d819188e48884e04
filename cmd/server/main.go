package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jarodreyes/prize-survey/internal/config"
	"github.com/jarodreyes/prize-survey/internal/database"
	"github.com/jarodreyes/prize-survey/internal/handlers"
	"github.com/jarodreyes/prize-survey/internal/middleware"
	"github.com/jarodreyes/prize-survey/internal/realtime"
	"github.com/jarodreyes/prize-survey/internal/services"

	_ "github.com/jarodreyes/prize-survey/docs"
)

const (
	rateLimitMax    = 5
	rateLimitWindow = time.Minute
)

// @title           Prize Survey API
// @version         1.0
// @description     Live event survey platform with milestone prize unlocks and raffle draws
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		// Run degraded: every store-backed route answers 503 until the
		// database comes back and the process is restarted.
		log.Printf("database unavailable: %v", err)
		db = nil
	} else if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	var sink realtime.Sink = realtime.NoopSink{}
	var hub *realtime.Hub
	if cfg.RealtimeEnabled {
		hub = realtime.NewHub()
		sink = hub
	} else {
		log.Println("REALTIME_ENABLED=false, clients fall back to polling")
	}

	authService := services.NewAuthService(cfg.JWTSecret)
	sessionService := services.NewSessionService(db, sink)
	submissionService := services.NewSubmissionService(db, sink)
	prizeService := services.NewPrizeService()
	raffleService := services.NewRaffleService(db, prizeService)
	resultsService := services.NewResultsService(db)
	activityService := services.NewActivityService(db)

	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(sessionService, cfg.BaseURL)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, authService)
	raffleHandler := handlers.NewRaffleHandler(raffleService)
	resultsHandler := handlers.NewResultsHandler(resultsService, activityService)
	optionsHandler := handlers.NewOptionsHandler()
	exportHandler := handlers.NewExportHandler(resultsService)
	adminHandler := handlers.NewAdminHandler(submissionService)
	wsHandler := handlers.NewWSHandler(hub)

	limiter := middleware.NewRateLimiter(rateLimitMax, rateLimitWindow)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-API-Key"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws/session/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	api.Use(middleware.RequireStore(db != nil))
	{
		api.POST("/auth/login", authHandler.Login)
		api.GET("/options", optionsHandler.GetOptions)

		api.POST("/sessions", sessionHandler.CreateSession)
		api.GET("/sessions/status", sessionHandler.SessionStatus)

		api.POST("/responses",
			middleware.RateLimit(limiter),
			middleware.Identity(authService),
			submissionHandler.SubmitResponse)

		api.GET("/raffle/:sessionId", raffleHandler.DrawRaffle)
		api.GET("/results/:sessionId", resultsHandler.GetResults)
		api.GET("/activity/feed", resultsHandler.ActivityFeed)

		admin := api.Group("")
		admin.Use(middleware.AdminAuth(cfg.AdminAPIKey))
		{
			admin.POST("/sessions/:id/end", sessionHandler.EndSession)
			admin.GET("/sessions/:id/export.csv", exportHandler.ExportCSV)
			admin.POST("/admin/test-users", adminHandler.AddTestUsers)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
