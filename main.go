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

	"studybuddy/config"
	"studybuddy/handlers"
	"studybuddy/middleware"
	"studybuddy/models"
	"studybuddy/routes"
	"studybuddy/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger, err := config.InitLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if cfg.AutoMigrate {
		err = db.AutoMigrate(
			&models.User{},
			&models.Challenge{},
			&models.Summary{},
			&models.SummaryObjective{},
			&models.Question{},
			&models.TestResult{},
			&models.Answer{},
		)
		if err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)
	defer redisClient.Close()

	// Initialize services
	tokens, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.JWTIssuer, cfg.TokenTTL)
	if err != nil {
		logger.Fatal("failed to create token service", zap.Error(err))
	}
	hasher := services.NewPasswordHasher(cfg.BcryptCost)
	userService := services.NewUserService(db, services.NewRedisUserCache(redisClient, cfg.UserCacheTTL))
	guard := services.NewAccessGuard(tokens, userService, cfg.AdminUserID)
	authService := services.NewAuthService(db, hasher, tokens)
	challengeService := services.NewChallengeService(db)
	summaryService := services.NewSummaryService(db)
	questionService := services.NewQuestionService(db)

	// Initialize WebSocket hub
	hub := services.NewHub()
	resultService := services.NewResultService(db, hub, prometheus.DefaultRegisterer, logger)

	// Setup Gin router
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		middleware.NewMetricsBuilder(prometheus.DefaultRegisterer).Build(),
		middleware.CORS(cfg.CORSOrigins),
	)

	routes.SetupRoutes(router, &routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, userService),
		User:      handlers.NewUserHandler(userService, guard),
		Challenge: handlers.NewChallengeHandler(challengeService),
		Summary:   handlers.NewSummaryHandler(summaryService),
		Question:  handlers.NewQuestionHandler(questionService),
		Result:    handlers.NewResultHandler(resultService),
		WS:        handlers.NewWSHandler(hub, guard, cfg.CORSOrigins),
	}, guard)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(ctx)
	})
	g.Go(func() error {
		logger.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
