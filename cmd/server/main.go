package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobtrail/internal/config"
	"jobtrail/internal/handler"
	"jobtrail/internal/logger"
	"jobtrail/internal/middleware"
	"jobtrail/internal/repository"
	"jobtrail/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	logger.Init()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	// --- Configuration ---
	cfg := config.Load()

	// --- Database Connection ---
	client, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database(cfg.MongoDB)

	// --- Index Bootstrap ---
	{
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := config.EnsureIndexes(ctx, db); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("failed to ensure indexes")
		}
		cancel()
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(db)
	postingRepo := repository.NewPostingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo)
	postingService := service.NewPostingService(postingRepo)
	contactService := service.NewContactService(contactRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	postingHandler := handler.NewPostingHandler(postingService)
	contactHandler := handler.NewContactHandler(contactService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware())
	router.Use(cors.Default())

	// --- Initialize Middlewares ---
	tokenAuthMW := middleware.TokenAuthMiddleware(authService)

	// --- Register Routes ---
	root := router.Group("")
	authHandler.RegisterAuthRoutes(root)
	postingHandler.RegisterPostingRoutes(root, tokenAuthMW)
	contactHandler.RegisterContactRoutes(root, tokenAuthMW)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "jobtrail API is running")
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
