package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/hugmood/hugmood/backend/internal/config"
	"github.com/hugmood/hugmood/backend/internal/handlers"
	"github.com/hugmood/hugmood/backend/internal/logger"
	"github.com/hugmood/hugmood/backend/internal/middleware"
	"github.com/hugmood/hugmood/backend/internal/repository"
	"github.com/hugmood/hugmood/backend/internal/service"
	"github.com/hugmood/hugmood/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting HugMood API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	entryRepo := repository.NewMoodEntryRepository(supabaseClient)
	activityRepo := repository.NewActivityLogRepository(supabaseClient)
	streakRepo := repository.NewStreakRepository(supabaseClient)
	insightRepo := repository.NewInsightRepository(supabaseClient)

	// Initialize services
	moodService := service.NewMoodService(entryRepo, activityRepo, streakRepo)
	insightService := service.NewInsightService(insightRepo)
	analyticsService := service.NewAnalyticsService(entryRepo, activityRepo, streakRepo, insightService)

	// Initialize handlers
	moodHandler := handlers.NewMoodHandler(moodService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	insightHandler := handlers.NewInsightHandler(insightService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	apiLimiter := middleware.NewRateLimiter(120, time.Minute, "api")

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes (all protected)
	v1 := router.Group("/api/v1")
	v1.Use(apiLimiter.Middleware())
	v1.Use(middleware.Auth(supabaseClient))
	{
		v1.POST("/moods", moodHandler.CreateMoodEntry)
		v1.POST("/activities", moodHandler.RecordActivity)
		v1.GET("/streak", moodHandler.GetStreak)

		v1.GET("/analytics", analyticsHandler.GetAnalytics)

		v1.GET("/insights", insightHandler.ListInsights)
		v1.POST("/insights/:id/read", insightHandler.MarkInsightRead)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
