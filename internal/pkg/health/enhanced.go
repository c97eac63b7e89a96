package health

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/database"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/nats"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return errors.New("postgres not configured")
	}
	return p.client.Ping(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return errors.New("redis not configured")
	}
	return r.client.Ping(ctx)
}

// NATSHealthChecker checks NATS connection health
type NATSHealthChecker struct {
	client *nats.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *nats.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

// CheckHealth checks if the NATS connection is up
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil || !n.client.IsConnected() {
		return errors.New("nats not connected")
	}
	return nil
}

type registration struct {
	checker  HealthChecker
	required bool
}

// HealthService manages health checks for multiple dependencies. A failing
// required dependency makes the service unhealthy, a failing optional one
// only degrades it.
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]registration
	logger   *logger.ZapLogger
	timeout  time.Duration
}

// NewHealthService creates a new health service
func NewHealthService(l *logger.ZapLogger) *HealthService {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &HealthService{
		checkers: make(map[string]registration),
		logger:   l,
		timeout:  3 * time.Second,
	}
}

// AddChecker registers a required dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.add(name, checker, true)
}

// AddOptionalChecker registers a best-effort dependency
func (h *HealthService) AddOptionalChecker(name string, checker HealthChecker) {
	h.add(name, checker, false)
}

func (h *HealthService) add(name string, checker HealthChecker, required bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = registration{checker: checker, required: required}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status   string `json:"status"`
	Required bool   `json:"required"`
	Error    string `json:"error,omitempty"`
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	regs := make(map[string]registration, len(h.checkers))
	for k, v := range h.checkers {
		regs[k] = v
	}
	h.mu.RUnlock()
	sort.Strings(names)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}

	for _, name := range names {
		reg := regs[name]
		info := DependencyInfo{Status: StatusHealthy, Required: reg.required}

		if err := reg.checker.CheckHealth(ctx); err != nil {
			h.logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Bool("required", reg.required),
				logger.ErrorField(err))

			info.Status = StatusUnhealthy
			info.Error = err.Error()
			if reg.required {
				response.Status = StatusUnhealthy
			} else if response.Status == StatusHealthy {
				response.Status = StatusDegraded
			}
		}
		response.Dependencies[name] = info
	}

	return response
}

// Handler reports every dependency; only an unhealthy required dependency
// turns the response into a 503
func (h *HealthService) Handler(serviceName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := h.CheckAllHealth(c.Request().Context())
		response.Service = serviceName
		response.Version = DefaultBuildInfo.Version

		statusCode := http.StatusOK
		if response.Status == StatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}
		return c.JSON(statusCode, response)
	}
}

// ReadyHandler is the readiness probe
func (h *HealthService) ReadyHandler(serviceName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := h.CheckAllHealth(c.Request().Context())
		response.Service = serviceName

		if response.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": serviceName,
		})
	}
}
