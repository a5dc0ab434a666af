package settings

import (
	"net/http"
	"time"

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
	l := zap.L().Named("settings.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("settings request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return false
	}
	return true
}

func (h *Handler) Get(c *gin.Context) {
	snap, err := h.service.Snapshot(c.Request.Context(), c.GetString("organization_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap.Response(time.Now()), nil)
}

func (h *Handler) UpdatePolicy(c *gin.Context) {
	var req UpdatePolicyRequest
	if !h.bind(c, &req) {
		return
	}

	policy, err := h.service.UpdatePolicy(c.Request.Context(), c.GetString("organization_id"), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, policy, nil)
}

func (h *Handler) SetOverride(c *gin.Context) {
	var req SetOverrideRequest
	if !h.bind(c, &req) {
		return
	}

	policy, err := h.service.SetOverride(c.Request.Context(), c.GetString("organization_id"), c.GetString("employee_id"), c.Param("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, policy, nil)
}

func (h *Handler) RemoveOverride(c *gin.Context) {
	policy, err := h.service.RemoveOverride(c.Request.Context(), c.GetString("organization_id"), c.GetString("employee_id"), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, policy, nil)
}

func (h *Handler) ListWorkflows(c *gin.Context) {
	w, err := h.service.Workflows(c.Request.Context(), c.GetString("organization_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, workflowResponses(w), nil)
}

func (h *Handler) UpsertWorkflow(c *gin.Context) {
	var req UpsertWorkflowRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.UpsertWorkflow(c.Request.Context(), c.GetString("organization_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteWorkflow(c *gin.Context) {
	if err := h.service.DeleteWorkflow(c.Request.Context(), c.GetString("organization_id"), c.Param("department")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"department": c.Param("department")}, nil)
}

func (h *Handler) UpdateWorkingDays(c *gin.Context) {
	var req UpdateWorkingDaysRequest
	if !h.bind(c, &req) {
		return
	}

	wd, err := h.service.UpdateWorkingDays(c.Request.Context(), c.GetString("organization_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"working_days": wd.Names()}, nil)
}

func (h *Handler) UpdateAccountingPeriod(c *gin.Context) {
	var req UpdateAccountingPeriodRequest
	if !h.bind(c, &req) {
		return
	}

	period, err := h.service.UpdateAccountingPeriod(c.Request.Context(), c.GetString("organization_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, period, nil)
}
