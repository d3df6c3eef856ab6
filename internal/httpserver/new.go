package httpserver

import (
	"database/sql"
	"errors"

	"admin-srv/config"
	"admin-srv/internal/audit"
	"admin-srv/internal/docstore"
	"admin-srv/internal/identity"
	"admin-srv/internal/mailer"
	"admin-srv/internal/query"
	"admin-srv/pkg/discord"
	"admin-srv/pkg/encrypter"
	pkgJWT "admin-srv/pkg/jwt"
	pkgKafka "admin-srv/pkg/kafka"
	"admin-srv/pkg/log"
	pkgMinio "admin-srv/pkg/minio"
	pkgRabbit "admin-srv/pkg/rabbitmq"
	pkgRedis "admin-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB
	store      docstore.Store

	// Infrastructure Configuration
	redisClient   pkgRedis.IRedis
	minioClient   pkgMinio.MinIO
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbit.IRabbitMQ

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager pkgJWT.IManager
	encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared domains, set up by setupCoreDomains
	queryUC    query.UseCase
	auditUC    audit.UseCase
	mailerUC   mailer.UseCase
	identityUC identity.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB
	Store      docstore.Store

	// Infrastructure Configuration
	RedisClient   pkgRedis.IRedis
	MinIOClient   pkgMinio.MinIO
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbit.IRabbitMQ

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager pkgJWT.IManager
	Encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,
		store:      cfg.Store,

		// Infrastructure Configuration
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}

	// Infrastructure Configuration
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}
	if srv.rabbitConn == nil {
		return errors.New("rabbitConn is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// discord is optional
	return nil
}
