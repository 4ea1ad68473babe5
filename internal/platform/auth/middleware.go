package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medilive/medilive/internal/platform/access"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserEmail   contextKey = "user_email"
	UserTypeKey contextKey = "user_type"
)

// Middleware verifies the bearer token on every request whose path is not
// public and places the decoded claims on the request context.
func Middleware(issuer *Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IsPublicPath(c.Path()) {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, UserIDKey, claims.Subject)
			ctx = context.WithValue(ctx, UserEmail, claims.Email)
			ctx = context.WithValue(ctx, UserTypeKey, claims.UserType)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func UserIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(UserIDKey).(string)
	return uid
}

func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(UserEmail).(string)
	return email
}

func UserTypeFromContext(ctx context.Context) string {
	ut, _ := ctx.Value(UserTypeKey).(string)
	return ut
}

// ActorFromContext builds the access-control actor for the current request
// from the verified claims placed on the context by Middleware.
func ActorFromContext(ctx context.Context) access.Actor {
	return access.Actor{
		ID:    UserIDFromContext(ctx),
		Email: EmailFromContext(ctx),
		Role:  access.ParseRole(UserTypeFromContext(ctx)),
	}
}
