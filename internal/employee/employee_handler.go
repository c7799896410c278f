package employee

import (
	"net/http"
	"sort"
	"strings"

	"go-shiftplan/internal/shared/apperror"
	"go-shiftplan/internal/shared/jornada"
	"go-shiftplan/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http employee validation failed", zap.Error(err))
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", httpErr.Message, err.Error())
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee")
	var req SaveEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	sedeName := c.Query("location")
	if sedeName == "" {
		sedeName = c.Query("sede")
	}
	h.logger.Debug("http get all employees", zap.String("sede", sedeName))

	resp, err := h.service.GetAll(ctx, sedeName)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]EmployeeResponse, 0, len(resp))
		for _, e := range resp {
			if strings.Contains(strings.ToLower(e.FullName), q) || strings.Contains(strings.ToLower(e.Role), q) {
				filtered = append(filtered, e)
			}
		}
		resp = filtered
	}

	if raw := c.Query("contract_type"); raw != "" {
		ct, err := jornada.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid contract_type filter", err.Error())
			return
		}
		filtered := make([]EmployeeResponse, 0, len(resp))
		for _, e := range resp {
			if e.ContractType == ct {
				filtered = append(filtered, e)
			}
		}
		resp = filtered
	}

	// roster order is kept unless a sort is requested explicitly
	if sortBy := strings.ToLower(strings.TrimSpace(c.Query("sort_by"))); sortBy != "" {
		desc := strings.ToLower(strings.TrimSpace(c.Query("sort_dir"))) == "desc"
		sort.SliceStable(resp, func(i, j int) bool {
			var less bool
			switch sortBy {
			case "role":
				less = strings.ToLower(resp[i].Role) < strings.ToLower(resp[j].Role)
			case "id":
				less = resp[i].ID < resp[j].ID
			default:
				less = strings.ToLower(resp[i].FullName) < strings.ToLower(resp[j].FullName)
			}
			if desc {
				return !less
			}
			return less
		})
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, meta)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", targetID))

	resp, err := h.service.GetByID(ctx, targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http update employee", zap.String("employee_id", id))
	var req SaveEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Update(ctx, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", id))

	if err := h.service.Delete(ctx, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
