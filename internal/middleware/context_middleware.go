package middleware

import (
	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger copies the request id and the authenticated caller from the
// gin context into the request context, together with a logger carrying both.
// Run it after AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		if rid == "" {
			rid = c.GetHeader(RequestIDHeader)
		}
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header(RequestIDHeader, rid)

		caller := contextutil.Caller{
			UserID:         c.GetString(ContextUserID),
			EmployeeID:     c.GetString(ContextEmployeeID),
			OrganizationID: c.GetString(ContextOrganizationID),
			Role:           c.GetString(ContextRole),
		}
		reqLogger := logger.With(append([]zap.Field{zap.String("request_id", rid)}, caller.Fields()...)...)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithCaller(ctx, caller)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
