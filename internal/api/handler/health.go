package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health — liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ReadinessHandler handles GET /health/ready — checks the backing stores
// before declaring the service ready. Either dependency may be nil when the
// service does not use it.
type ReadinessHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{mongo: db, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	resp := readinessResponse{Status: "ready", Dependencies: map[string]dependencyStatus{}}
	code := http.StatusOK

	if h.mongo != nil {
		status := dependencyStatus{Status: "up"}
		if err := h.mongo.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			status = dependencyStatus{Status: "down", Error: err.Error()}
			resp.Status = "not ready"
			code = http.StatusServiceUnavailable
		}
		resp.Dependencies["mongo"] = status
	}

	if h.redis != nil {
		status := dependencyStatus{Status: "up"}
		if err := h.redis.Ping(ctx).Err(); err != nil {
			status = dependencyStatus{Status: "down", Error: err.Error()}
			resp.Status = "not ready"
			code = http.StatusServiceUnavailable
		}
		resp.Dependencies["redis"] = status
	}

	return c.JSON(code, resp)
}
