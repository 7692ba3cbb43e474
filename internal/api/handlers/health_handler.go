package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger é o armazenamento verificado pelos health checks
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	store   Pinger
	backend string
	logger  *zap.Logger
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(store Pinger, backend string, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:   store,
		backend: backend,
		logger:  logger,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (valida o armazenamento)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	h.respond(c, 3*time.Second, "ready", "not_ready")
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.respond(c, 5*time.Second, "healthy", "unhealthy")
}

func (h *HealthHandler) respond(c *gin.Context, timeout time.Duration, okStatus, failStatus string) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	response := HealthResponse{
		Status:    okStatus,
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Armazenamento indisponível", zap.String("backend", h.backend), zap.Error(err))
		response.Checks[h.backend] = "failed"
		response.Status = failStatus
		response.Error = "Armazenamento " + h.backend + " indisponível"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	response.Checks[h.backend] = "ok"
	c.JSON(http.StatusOK, response)
}
