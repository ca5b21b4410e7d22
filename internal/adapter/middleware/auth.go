package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"loan-backoffice/internal/domain/authz"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// ActorClaims is the token payload the identity collaborator issues. The
// engine trusts it as already authenticated; unknown roles are carried
// through and denied by the policy table.
type ActorClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth parses the bearer token and stores the acting identity on the
// request context.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			var claims ActorClaims
			tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			if claims.UserID == "" || claims.Role == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token missing identity claims"})
			}

			c.Set(actorContextKey, authz.Actor{ID: claims.UserID, Role: authz.Role(claims.Role)})
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ActorFrom returns the authenticated actor set by JWTAuth.
func ActorFrom(c echo.Context) (authz.Actor, bool) {
	a, ok := c.Get(actorContextKey).(authz.Actor)
	return a, ok
}
