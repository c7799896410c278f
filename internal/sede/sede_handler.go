package sede

import (
	"net/http"

	"go-shiftplan/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	registry *Registry
	logger   *zap.Logger
}

func NewHandler(registry *Registry, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("sede.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sede.handler")
	}
	return &Handler{registry: registry, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	sedes := h.registry.All()
	h.logger.Debug("http list sedes", zap.Int("count", len(sedes)))
	response.Success(c, http.StatusOK, sedes, nil)
}
