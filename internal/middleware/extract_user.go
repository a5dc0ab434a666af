package middleware

import (
	"net/http"

	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ExtractUserID fails closed when no authenticated user is on the context and
// marks the id as validated for middlewares that key on it.
func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetString(ContextUserID)
		if userID == "" {
			abortWith(ctx, apperror.New(apperror.CodeUnauthorized, "User is not authenticated", http.StatusUnauthorized), nil)
			return
		}

		ctx.Set("user_id_validated", userID)
		ctx.Next()
	}
}
