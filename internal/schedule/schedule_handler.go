package schedule

import (
	"net/http"
	"strconv"
	"strings"

	"go-shiftplan/internal/shared/apperror"
	"go-shiftplan/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("schedule.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("schedule request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http schedule validation failed", zap.Error(err))
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", httpErr.Message, err.Error())
}

func (h *Handler) Create(c *gin.Context) {
	var req SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	h.logger.Debug("http create schedule", zap.String("sede", req.Sede))

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	sedeName := c.Query("location")
	if sedeName == "" {
		sedeName = c.Query("sede")
	}
	h.logger.Debug("http get all schedules", zap.String("sede", sedeName))

	resp, err := h.service.GetAll(c.Request.Context(), sedeName)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if month != 0 || year != 0 || q != "" {
		filtered := make([]ScheduleResponse, 0, len(resp))
		for _, s := range resp {
			if month != 0 && s.Month != month {
				continue
			}
			if year != 0 && s.Year != year {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(s.Name), q) {
				continue
			}
			filtered = append(filtered, s)
		}
		resp = filtered
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, meta)
}

func (h *Handler) GetById(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get schedule by id", zap.String("schedule_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http update schedule", zap.String("schedule_id", id))

	var req SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete schedule", zap.String("schedule_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
