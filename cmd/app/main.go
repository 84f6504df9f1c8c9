package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"track/cmd"
	httpin "track/internal/adapters/in/http"
	"track/internal/adapters/in/kafka"
	"track/internal/adapters/out/postgres/trackeventrepo"
	"track/internal/adapters/out/postgres/trackrepo"
	"track/internal/core/application/orchestration"
	"track/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := gormDB.AutoMigrate(&trackrepo.TrackDTO{}, &trackeventrepo.TrackEventDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	coordinator, err := app.CreateCoordinator(configs, logger)
	if err != nil {
		log.Fatalf("Error wiring coordinator: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := startConsumer(ctx, coordinator, configs, logger)
	defer func() {
		if err := consumer.Close(); err != nil {
			logger.Error("Kafka consumer close failed", "error", err)
		}
	}()

	jobManager := jobs.NewJobManager(app.CreateRecordHubDelaysCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using environment: %v", err)
	}

	return cmd.Config{
		HTTPPort:                     envOrDefault("HTTP_PORT", "8080"),
		DBHost:                       envOrDefault("DB_HOST", "localhost"),
		DBPort:                       envOrDefault("DB_PORT", "5432"),
		DBUser:                       envOrDefault("DB_USER", "postgres"),
		DBPassword:                   envOrDefault("DB_PASSWORD", "postgres"),
		DBName:                       envOrDefault("DB_NAME", "track"),
		DBSslMode:                    envOrDefault("DB_SSLMODE", "disable"),
		KafkaHost:                    envOrDefault("KAFKA_HOST", "localhost:9092"),
		KafkaConsumerGroup:           envOrDefault("KAFKA_CONSUMER_GROUP", "track-service"),
		KafkaTrackingStartTopic:      envOrDefault("KAFKA_TRACKING_START_TOPIC", "tracking-start-requested"),
		KafkaHubSegmentDepartedTopic: envOrDefault("KAFKA_HUB_SEGMENT_DEPARTED_TOPIC", "hub-segment-departed"),
		KafkaHubSegmentArrivedTopic:  envOrDefault("KAFKA_HUB_SEGMENT_ARRIVED_TOPIC", "hub-segment-arrived"),
		KafkaLastMileDepartedTopic:   envOrDefault("KAFKA_LAST_MILE_DEPARTED_TOPIC", "last-mile-departed"),
		KafkaLastMileCompletedTopic:  envOrDefault("KAFKA_LAST_MILE_COMPLETED_TOPIC", "last-mile-completed"),
		HubDeliveryServiceURL:        envOrDefault("HUB_DELIVERY_SERVICE_URL", "http://localhost:8081"),
		LastMileServiceURL:           envOrDefault("LAST_MILE_SERVICE_URL", "http://localhost:8082"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startConsumer(
	ctx context.Context,
	coordinator *orchestration.Coordinator,
	configs cmd.Config,
	logger *slog.Logger,
) *kafka.Consumer {
	topics := kafka.Topics{
		TrackingStartRequested: configs.KafkaTrackingStartTopic,
		HubSegmentDeparted:     configs.KafkaHubSegmentDepartedTopic,
		HubSegmentArrived:      configs.KafkaHubSegmentArrivedTopic,
		LastMileDeparted:       configs.KafkaLastMileDepartedTopic,
		LastMileCompleted:      configs.KafkaLastMileCompletedTopic,
	}
	listener := kafka.NewListener(coordinator, topics, logger)

	brokers := strings.Split(configs.KafkaHost, ",")
	consumer := kafka.NewConsumer(brokers, configs.KafkaConsumerGroup, topics.All())

	go func() {
		if err := consumer.Consume(ctx, listener.Handle); err != nil && ctx.Err() == nil {
			logger.Error("Kafka consumer stopped", "error", err)
		}
	}()

	return consumer
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateGetTrackByOrderIDQueryHandler(),
		app.CreateGetTrackByIDQueryHandler(),
		app.CreateGetTracksByHubQueryHandler(),
		app.CreateSearchTracksQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}
