package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-leave/internal/domain"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID         = "user_id"
	ContextEmployeeID     = "employee_id"
	ContextOrganizationID = "organization_id"
	ContextRole           = "role"
)

var (
	errTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	errTokenInvalid = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	errTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, err *apperror.AppError, details any) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, details)
	c.Abort()
}

// AuthMiddleware verifies an HS256 access token from the Authorization header
// or the access_token cookie and exposes the actor on the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, errTokenMissing, nil)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, errTokenExpired, nil)
				return
			}
			abortWith(c, errTokenInvalid, nil)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, errTokenInvalid, nil)
			return
		}

		values := make(map[string]string, 3)
		for _, key := range []string{ContextUserID, ContextOrganizationID, ContextEmployeeID} {
			v, ok := claims[key].(string)
			if !ok || v == "" {
				abortWith(c, errTokenInvalid, key+" not found in token")
				return
			}
			values[key] = v
		}

		rawRole, _ := claims[ContextRole].(string)
		role, err := domain.ParseRole(rawRole)
		if err != nil {
			abortWith(c, errTokenInvalid, "role not recognised")
			return
		}

		c.Set(ContextUserID, values[ContextUserID])
		c.Set(ContextEmployeeID, values[ContextEmployeeID])
		c.Set(ContextOrganizationID, values[ContextOrganizationID])
		c.Set(ContextRole, role.String())

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		for _, role := range allowedRoles {
			if userRole == role.String() {
				c.Next()
				return
			}
		}

		abortWith(c, apperror.ErrForbidden, nil)
	}
}
