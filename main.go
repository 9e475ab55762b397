// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/funabab/ilivercare-app/config"
	"github.com/funabab/ilivercare-app/database"
	accountRepoPkg "github.com/funabab/ilivercare-app/database/repository/account"
	recordRepoPkg "github.com/funabab/ilivercare-app/database/repository/record"
	"github.com/funabab/ilivercare-app/handlers"
	"github.com/funabab/ilivercare-app/knn"
	"github.com/funabab/ilivercare-app/middleware"
	"github.com/funabab/ilivercare-app/routes"
	"github.com/funabab/ilivercare-app/services/account"
	"github.com/funabab/ilivercare-app/services/prediction"
	"github.com/funabab/ilivercare-app/services/record"
	"github.com/funabab/ilivercare-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Load the trained model once at startup; it is a fixed artifact.
	classifier, err := knn.Load(config.AppConfig.ModelPath)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load classifier model: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	recRepo := recordRepoPkg.NewMongoRecordRepo()
	acctRepo := accountRepoPkg.NewMongoAccountRepo()

	// services.
	recordService := &record.DefaultRecordService{
		Repo: recRepo,
	}
	predictionService := &prediction.DefaultPredictionService{
		Repo:       recRepo,
		Classifier: classifier,
	}
	accountService := &account.DefaultAccountService{
		Repo:          acctRepo,
		Verifications: account.NewRedisVerificationStore(utils.GetTokenCacheClient()),
		AuthTokens:    account.NewRedisAuthTokenStore(utils.GetAuthCacheClient()),
		Mailer:        utils.LogMailer{},
	}

	recordHandler := handlers.NewRecordHandler(recordService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	authHandler := handlers.NewAuthHandler(accountService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: acctRepo,

		// Auth endpoints.
		RegisterAccountHandler: authHandler.RegisterAccountHandler,
		LoginHandler:           authHandler.LoginHandler,
		VerifyEmailHandler:     authHandler.VerifyEmailHandler,

		// Record endpoints.
		CreateRecordHandler: recordHandler.CreateRecordHandler,
		ListRecordsHandler:  recordHandler.ListRecordsHandler,
		GetRecordHandler:    recordHandler.GetRecordHandler,
		UpdateRecordHandler: recordHandler.UpdateRecordHandler,
		DeleteRecordHandler: recordHandler.DeleteRecordHandler,

		// Prediction endpoint.
		PredictRecordHandler: predictionHandler.PredictRecordHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetAuthCacheClient(), utils.GetTokenCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
