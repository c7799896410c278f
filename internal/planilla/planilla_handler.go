package planilla

import (
	"net/http"
	"strconv"

	planillaerrors "go-shiftplan/internal/planilla/errors"
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
	l := zap.L().Named("planilla.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("planilla.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("planilla request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseQuery(c *gin.Context) (Query, error) {
	q := Query{Policy: c.Query("policy")}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return Query{}, planillaerrors.ErrInvalidMonth
		}
		q.Month = m
	}
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return Query{}, planillaerrors.ErrInvalidYear
		}
		q.Year = y
	}
	return q, nil
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	q, err := parseQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Debug("http get planilla", zap.String("schedule_id", id), zap.Int("month", q.Month), zap.Int("year", q.Year))

	report, err := h.service.Get(c.Request.Context(), id, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Export(c *gin.Context) {
	id := c.Param("id")
	q, err := parseQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	format := c.DefaultQuery("format", FormatCSV)
	h.logger.Debug("http export planilla", zap.String("schedule_id", id), zap.String("format", format))

	file, err := h.service.Export(c.Request.Context(), id, q, format)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
