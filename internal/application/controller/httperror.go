package controller

import (
	"errors"
	"net/http"

	"do-it-now/internal/application/middleware"
	"do-it-now/internal/domain/entity"
	"do-it-now/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// writeError maps the domain error taxonomy to HTTP exactly once. Anything
// outside the taxonomy is a 500.
func writeError(c echo.Context, err error) error {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusUnprocessableEntity, validationErr)
	}

	var authErr *model.AuthError
	if errors.As(err, &authErr) {
		return c.JSON(http.StatusUnauthorized, authErr)
	}

	var forbiddenErr *model.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		return c.JSON(http.StatusForbidden, forbiddenErr)
	}

	var notFoundErr *model.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.JSON(http.StatusNotFound, notFoundErr)
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

// currentUser returns the user resolved by the bearer middleware.
func currentUser(c echo.Context) *entity.User {
	return c.Get(middleware.UserContextKey).(*entity.User)
}

// currentToken returns the bearer token presented on this request.
func currentToken(c echo.Context) string {
	return c.Get(middleware.TokenContextKey).(string)
}
