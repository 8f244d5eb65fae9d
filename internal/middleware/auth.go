package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
// Requests without a valid bearer token are rejected.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return authenticate(jwtSecret, false)
}

// OptionalAuthMiddleware authenticates the caller when a bearer token is present
// and otherwise lets the request through as a Guest.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return authenticate(jwtSecret, true)
}

func authenticate(jwtSecret string, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if optional {
				c.Next()
				return
			}
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		accountID, err := claims.AccountID()
		if err != nil || !claims.Role.Valid() {
			logger.Error("Account id or role missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		actor := domain.Actor{Role: claims.Role, AccountID: accountID}
		enrichedLogger := logger.With(slog.Int("account_id", accountID), slog.String("role", string(actor.Role)))

		ctx := WithActor(c.Request.Context(), actor)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated actor has one of roles.
// It must run after AuthMiddleware or OptionalAuthMiddleware.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted", slog.String("role", string(actor.Role)))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	}
}
