package settings

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	read := middleware.RBACAuthorize(rbacService, "settings", "read")
	update := middleware.RBACAuthorize(rbacService, "settings", "update")

	s := r.Group("/settings")
	{
		s.GET("", read, handler.Get)
		s.GET("/workflows", read, handler.ListWorkflows)

		s.PUT("/policy", middleware.RateLimitByUser(0.5, 2), update, handler.UpdatePolicy)
		s.PUT("/policy/overrides/:employee_id", middleware.RateLimitByUser(0.5, 2), update, handler.SetOverride)
		s.DELETE("/policy/overrides/:employee_id", middleware.RateLimitByUser(0.5, 2), update, handler.RemoveOverride)
		s.PUT("/workflows", middleware.RateLimitByUser(0.5, 2), update, handler.UpsertWorkflow)
		s.DELETE("/workflows/:department", middleware.RateLimitByUser(0.5, 2), update, handler.DeleteWorkflow)
		s.PUT("/working-days", middleware.RateLimitByUser(0.5, 2), update, handler.UpdateWorkingDays)
		s.PUT("/accounting-period", middleware.RateLimitByUser(0.5, 2), update, handler.UpdateAccountingPeriod)
	}
}
