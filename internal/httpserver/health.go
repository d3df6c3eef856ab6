package httpserver

import (
	"context"
	"net/http"
	"time"

	"admin-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "Admin console API"
	HealthVersion = "1.0.0"
	ServiceName   = "admin-srv"

	readyCheckTimeout = 3 * time.Second
)

type dependencyCheck struct {
	name  string
	check func(ctx context.Context) error
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings every backing service and answers 503 on the first failure.
// @Summary Readiness Check
// @Description Check Postgres, Redis, MinIO, Kafka and RabbitMQ
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyCheckTimeout)
	defer cancel()

	status := gin.H{}
	for _, dep := range srv.dependencies() {
		if err := dep.check(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s not ready: %v", dep.name, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": dep.name + " connection failed",
				"error":   err.Error(),
			})
			return
		}
		status[dep.name] = "connected"
	}

	status["status"] = "ready"
	status["service"] = ServiceName
	status["version"] = HealthVersion
	response.OK(c, status)
}

func (srv HTTPServer) dependencies() []dependencyCheck {
	return []dependencyCheck{
		{name: "postgres", check: srv.postgresDB.PingContext},
		{name: "redis", check: srv.redisClient.Ping},
		{name: "minio", check: srv.minioClient.HealthCheck},
		{name: "kafka", check: func(context.Context) error { return srv.kafkaProducer.HealthCheck() }},
		{name: "rabbitmq", check: func(context.Context) error {
			if !srv.rabbitConn.IsReady() {
				return errRabbitNotReady
			}
			return nil
		}},
	}
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
