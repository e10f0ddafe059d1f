package middleware

import (
	"net/http"
	"strings"

	"beaconia/pkg/logger"
	"beaconia/pkg/utils"

	jsonres "beaconia/pkg/response"

	"github.com/labstack/echo/v4"
)

const UserIDKey = "user_id"

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token subject under "user_id".
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					jsonres.CodeUnauthorized, "Authentication required", nil,
				))
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					jsonres.CodeUnauthorized, "Invalid authorization format", nil,
				))
			}

			claims, err := utils.ParseJWT(tokenString, secret)
			if err != nil {
				logger.Debug("rejected bearer token", "error", err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					jsonres.CodeUnauthorized, "Invalid or expired token", nil,
				))
			}

			c.Set(UserIDKey, claims.Subject)
			return next(c)
		}
	}
}

// OptionalAuthMiddleware identifies the caller when possible and otherwise
// lets the request through anonymously.
func OptionalAuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return next(c)
			}

			claims, err := utils.ParseJWT(tokenString, secret)
			if err != nil {
				logger.Debug("ignoring invalid optional token", "error", err)
				return next(c)
			}

			c.Set(UserIDKey, claims.Subject)
			return next(c)
		}
	}
}

// UserID returns the authenticated caller, or "" for anonymous requests.
func UserID(c echo.Context) string {
	id, _ := c.Get(UserIDKey).(string)
	return id
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
