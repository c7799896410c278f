package worktime

import (
	"net/http"
	"strconv"

	"go-shiftplan/internal/shared/apperror"
	"go-shiftplan/internal/shared/response"
	worktimeerrors "go-shiftplan/internal/worktime/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("worktime.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worktime.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("work time config request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func sedeParam(c *gin.Context) string {
	if s := c.Query("location"); s != "" {
		return s
	}
	return c.Query("sede")
}

func (h *Handler) GetAll(c *gin.Context) {
	sedeName := sedeParam(c)
	h.logger.Debug("http get all work time configs", zap.String("sede", sedeName))

	resp, err := h.service.GetAll(c.Request.Context(), sedeName)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.writeServiceError(c, worktimeerrors.ErrInvalidYear)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), sedeParam(c), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Save(c *gin.Context) {
	var req SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http work time config validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", httpErr.Message, err.Error())
		return
	}

	resp, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
