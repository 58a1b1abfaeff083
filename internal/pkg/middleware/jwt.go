package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/rideorchestrator/internal/pkg/jwt"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/utils"
)

// Context keys set by the auth middlewares
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextUserRole, models.UserRole(fmt.Sprintf("%v", role)))

			return next(c)
		}
	}
}

// RequireRole rejects callers whose role claim is not one of roles
func RequireRole(roles ...models.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requester, ok := RequesterFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}
			for _, role := range roles {
				if requester.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// RequesterFromContext returns the authenticated caller set by JWTAuthMiddleware
func RequesterFromContext(c echo.Context) (models.Requester, bool) {
	userID, ok := c.Get(ContextUserID).(uuid.UUID)
	if !ok {
		return models.Requester{}, false
	}
	role, _ := c.Get(ContextUserRole).(models.UserRole)
	return models.Requester{ID: userID, Role: role}, true
}
