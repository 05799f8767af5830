package main

import (
	"log"

	"spaceport-booking/cmd"
	"spaceport-booking/internal/data/repository"
	"spaceport-booking/internal/wire"
	"spaceport-booking/pkg/database"
	"spaceport-booking/pkg/queue"
	"spaceport-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Optional order event publisher; disabled when AMQP_URL is unset.
	publisher := queue.NewPublisher(config.Broker.URL, logger)

	// Optional redis-backed rate limiter; disabled when REDIS_ADDR is unset.
	var rdb *redis.Client
	if config.RateLimit.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: config.RateLimit.RedisAddr})
		defer rdb.Close()
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, publisher, rdb, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
