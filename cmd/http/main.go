package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medscreen-service/internal/app/config"
	"medscreen-service/internal/app/delivery/http/middlewares"
	"medscreen-service/internal/app/delivery/http/routers"
	"medscreen-service/internal/app/drivers/database"
	"medscreen-service/internal/app/drivers/logger"
	"medscreen-service/internal/app/drivers/messaging"
	"medscreen-service/internal/app/drivers/storage"
	"medscreen-service/internal/app/services/core/assessments"
	"medscreen-service/internal/app/services/core/formsessions"
	"medscreen-service/internal/app/services/core/health"
	"medscreen-service/internal/app/services/predictor"
	"medscreen-service/internal/app/services/shared/eventqueue"
	"medscreen-service/internal/app/services/shared/locker"
	"medscreen-service/internal/app/services/shared/redis"
	sharedstorage "medscreen-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConn,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing app dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Object storage
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := minioStorage.EnsureBucket(bucketCtx, bootstrap.DriverConfig.Minio.BucketName); err != nil {
		log.Fatalf("Unable to ensure minio bucket exists: %v", err)
	}

	// Event queue
	eventQueueService, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, 10)
	if err != nil {
		log.Fatalf("Unable to initialize event queue: %v", err)
	}

	// Prediction service client
	predictorClient := predictor.NewPredictorClient(bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	customMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Assessments
	assessmentUsecase := assessments.NewAssessmentUsecase(predictorClient, bootstrap.Logger)
	assessmentController := assessments.NewAssessmentController(bootstrap.Logger, assessmentUsecase)

	// Form sessions
	formSessionRepository := formsessions.NewFormSessionRedisRepository(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	formSessionUsecase := formsessions.NewFormSessionUsecase(
		formSessionRepository,
		lockerService,
		predictorClient,
		minioStorage,
		eventQueueService,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	formSessionController := formsessions.NewFormSessionController(bootstrap.Logger, formSessionUsecase, bootstrap.InternalConfig)

	// Health
	healthUsecase := health.NewHealthUsecase(predictorClient, bootstrap.Logger)
	healthController := health.NewHealthController(bootstrap.Logger, healthUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		customMiddlewares,
		assessmentController,
		formSessionController,
		healthController,
	)
}
