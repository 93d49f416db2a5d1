package middleware

import (
	"errors"
	"net/http"
	"strings"

	"do-it-now/internal/domain/model"
	"do-it-now/internal/domain/usecase/auth"
	"do-it-now/pkg/msg"

	"github.com/labstack/echo/v4"
)

// UserContextKey is where the authenticated user is stored on the echo context.
const UserContextKey = "auth.user"

// TokenContextKey is where the presented bearer token is stored on the echo context.
const TokenContextKey = "auth.token"

// BearerAuth resolves the Authorization header to a user via the auth
// usecase and stores both user and token on the context. Requests without a
// valid token are rejected with 401 before reaching the handler.
func BearerAuth(useCase auth.UseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": msg.GetMessage("auth.error.unauthenticated"),
				})
			}

			user, err := useCase.CurrentUser(token)
			if err != nil {
				var authErr *model.AuthError
				if errors.As(err, &authErr) {
					return c.JSON(http.StatusUnauthorized, authErr)
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}

			c.Set(UserContextKey, user)
			c.Set(TokenContextKey, token)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
