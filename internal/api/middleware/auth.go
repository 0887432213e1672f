package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/marketplace-api/internal/core/token"
)

// TokenCookie is the cookie carrying the bearer token for browser clients.
const TokenCookie = "token"

// extractToken pulls the raw token from the request. The Authorization
// header wins; the cookie is the fallback. No other sources.
func extractToken(c echo.Context) string {
	if h := c.Request().Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// Auth resolves and verifies the bearer token and injects its claims into
// the echo context. Missing, expired, tampered, and malformed tokens are
// indistinguishable to clients: all yield 401.
func Auth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			claims, status := tokens.Verify(raw)
			if status != token.StatusValid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set("account_id", claims.Subject)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

// OptionalAuth injects claims when a valid token is present and passes the
// request through otherwise. Used by routes that accept anonymous traffic.
func OptionalAuth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw := extractToken(c); raw != "" {
				if claims, status := tokens.Verify(raw); status == token.StatusValid {
					c.Set("account_id", claims.Subject)
					c.Set("email", claims.Email)
					c.Set("role", claims.Role)
				}
			}
			return next(c)
		}
	}
}
