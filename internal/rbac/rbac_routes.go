package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes expects r to be behind authentication already.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/me", handler.MyPermissions)
	}
}
