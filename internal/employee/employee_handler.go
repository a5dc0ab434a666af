package employee

import (
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

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
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetProfile returns the routing profile (department and line manager).
// "me" resolves to the caller.
func (h *Handler) GetProfile(c *gin.Context) {
	id := c.Param("id")
	if id == "me" {
		id = c.GetString("employee_id")
	}

	p, err := h.service.FindByID(c.Request.Context(), c.GetString("organization_id"), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p.Response(), nil)
}

func (h *Handler) GetMyReports(c *gin.Context) {
	reports, err := h.service.DirectReports(c.Request.Context(), c.GetString("organization_id"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	out := make([]ProfileResponse, 0, len(reports))
	for _, p := range reports {
		out = append(out, p.Response())
	}
	response.Success(c, http.StatusOK, out, nil)
}
