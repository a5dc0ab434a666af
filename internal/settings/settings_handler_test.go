package settings_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/settings"
	settingserrors "go-leave/internal/settings/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeService struct {
	settings.Service
	snapshotFn       func(ctx context.Context, organizationID string) (settings.Snapshot, error)
	upsertWorkflowFn func(ctx context.Context, organizationID string, req settings.UpsertWorkflowRequest) (settings.WorkflowResponse, error)
}

func (f *fakeService) Snapshot(ctx context.Context, organizationID string) (settings.Snapshot, error) {
	return f.snapshotFn(ctx, organizationID)
}

func (f *fakeService) UpsertWorkflow(ctx context.Context, organizationID string, req settings.UpsertWorkflowRequest) (settings.WorkflowResponse, error) {
	return f.upsertWorkflowFn(ctx, organizationID, req)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newSettingsRouter(svc settings.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := settings.NewHandler(svc, zap.NewNop())
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("organization_id", "org-1")
		c.Set("employee_id", "emp-1")
		c.Next()
	})
	r.GET("/settings", h.Get)
	r.PUT("/settings/workflows", h.UpsertWorkflow)
	return r
}

func TestSettingsHandler_Get(t *testing.T) {
	svc := &fakeService{snapshotFn: func(ctx context.Context, org string) (settings.Snapshot, error) {
		assert.Equal(t, "org-1", org)
		snap := settings.DefaultSnapshot()
		snap.Workflows = domain.Workflows{"Sales": domain.ApproverHR, "Eng": domain.ApproverLineManager}
		return snap, nil
	}}

	w := httptest.NewRecorder()
	newSettingsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var body settings.SettingsResponse
	assert.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, body.WorkingDays)
	assert.Equal(t, "Eng", body.Workflows[0].Department)
	assert.Equal(t, "all-time", body.Window)
}

func TestSettingsHandler_UpsertWorkflow(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/settings/workflows", bytes.NewBufferString(`{"department":"Sales"}`))
		req.Header.Set("Content-Type", "application/json")
		newSettingsRouter(&fakeService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("service error mapped", func(t *testing.T) {
		svc := &fakeService{upsertWorkflowFn: func(ctx context.Context, org string, req settings.UpsertWorkflowRequest) (settings.WorkflowResponse, error) {
			return settings.WorkflowResponse{}, settingserrors.ErrInvalidApproverRole
		}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/settings/workflows", bytes.NewBufferString(`{"department":"Sales","approver_role":"CEO"}`))
		req.Header.Set("Content-Type", "application/json")
		newSettingsRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "LINE_MANAGER")
	})
}
