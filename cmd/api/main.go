package main

import (
	"context"
	"fmt"
	"time"

	"admin-srv/config"
	configKafka "admin-srv/config/kafka"
	configMinio "admin-srv/config/minio"
	configPostgre "admin-srv/config/postgre"
	configRabbit "admin-srv/config/rabbitmq"
	configRedis "admin-srv/config/redis"
	_ "admin-srv/docs" // Import swagger docs
	docstorePostgre "admin-srv/internal/docstore/postgre"
	"admin-srv/internal/httpserver"
	"admin-srv/migrations"
	"admin-srv/pkg/discord"
	"admin-srv/pkg/encrypter"
	pkgJWT "admin-srv/pkg/jwt"
	"admin-srv/pkg/log"
)

// @title       Admin Console API
// @description Back office API for users, contact messages and collection queries.
// @version     1
// @schemes     http https
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name admin_auth_token
// @description Session token stored in an HttpOnly cookie. Set by /api/v1/authentication/login.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token returned by login. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 4. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if cfg.Postgres.AutoMigrate {
		if err := migrations.Up(postgresDB); err != nil {
			logger.Error(ctx, "Failed to apply migrations: ", err)
			return
		}
		logger.Info(ctx, "Database migrations applied")
	}

	// 5. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 6. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect(redisClient)
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 7. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	// 8. Initialize Kafka producer
	kafkaProducer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka: ", err)
		return
	}
	defer configKafka.Disconnect(kafkaProducer)
	logger.Infof(ctx, "Kafka producer ready for topic %s", cfg.Kafka.Topic)

	// 9. Initialize RabbitMQ
	rabbitConn, err := configRabbit.Connect(logger, cfg.RabbitMQ)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer configRabbit.Disconnect(rabbitConn)
	logger.Info(ctx, "RabbitMQ connected successfully")

	// 10. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 11. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,
		Store:      docstorePostgre.New(postgresDB, logger),

		// Infrastructure Configuration
		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,
		Encrypter:  encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
