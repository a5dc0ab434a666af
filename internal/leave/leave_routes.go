package leave

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the leave endpoints. applyGuards run before the
// permission check on POST /leaves only (idempotency, rate limiting).
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	applyGuards ...gin.HandlerFunc,
) {
	apply := middleware.RBACAuthorize(rbacService, "leave", "apply")
	read := middleware.RBACAuthorize(rbacService, "leave", "read")
	review := middleware.RBACAuthorize(rbacService, "leave", "review")
	admin := middleware.RBACAuthorize(rbacService, "leave", "admin")

	leaves := r.Group("/leaves")
	{
		leaves.POST("", append(append([]gin.HandlerFunc{}, applyGuards...), apply, handler.Apply)...)
		leaves.POST("/preview", apply, handler.Preview)
		leaves.GET("", read, handler.GetAll)
		leaves.GET("/balance/:employee_id", read, handler.GetBalance)
		leaves.GET("/:id", read, handler.GetByID)
		leaves.POST("/:id/review", middleware.RateLimitByUser(2, 10), review, handler.Review)
	}

	adminLeaves := r.Group("/admin/leaves")
	{
		adminLeaves.POST("", admin, handler.AdminCreate)
		adminLeaves.PUT("/:id", admin, handler.AdminUpdate)
		adminLeaves.DELETE("/:id", admin, handler.AdminDelete)
	}
}
