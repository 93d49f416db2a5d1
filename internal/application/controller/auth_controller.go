package controller

import (
	"net/http"

	"do-it-now/internal/domain/model"
	"do-it-now/internal/domain/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
	authMw  echo.MiddlewareFunc
}

func NewAuthController(api *echo.Group, useCase auth.UseCase, authMw echo.MiddlewareFunc) *AuthController {
	return &AuthController{api: api, useCase: useCase, authMw: authMw}
}

// InitAuthRoutes initializes authentication routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/register", controller.Register)
	controller.api.POST("/login", controller.Login)
	controller.api.POST("/logout", controller.Logout, controller.authMw)
	controller.api.GET("/user", controller.User, controller.authMw)
	controller.api.PUT("/user", controller.UpdateUser, controller.authMw)
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.RegisterDTO true "Registration data"
// @Success 201 {object} model.AuthResponse "Token and created user"
// @Failure 422 {object} model.ValidationError "Invalid registration data"
// @Router /register [post]
func (controller *AuthController) Register(c echo.Context) error {
	var dto model.RegisterDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	response, err := controller.useCase.Register(dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, response)
}

// Login godoc
// @Summary Authenticate a user
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginDTO true "Login credentials"
// @Success 200 {object} model.AuthResponse "Token and user"
// @Failure 401 {object} model.AuthError "Invalid credentials"
// @Router /login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var dto model.LoginDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	response, err := controller.useCase.Login(dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary Revoke the current token
// @Description Invalidate the bearer token used on this request
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204 "Token revoked"
// @Failure 401 {object} model.AuthError "Missing or invalid token"
// @Router /logout [post]
func (controller *AuthController) Logout(c echo.Context) error {
	if err := controller.useCase.Logout(currentToken(c)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// User godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.User "Authenticated user"
// @Failure 401 {object} model.AuthError "Missing or invalid token"
// @Router /user [get]
func (controller *AuthController) User(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

// UpdateUser godoc
// @Summary Update the authenticated user's profile
// @Description Update mutable profile fields (name). Email cannot change.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body model.UpdateProfileDTO true "Profile fields"
// @Success 200 {object} entity.User "Updated user"
// @Failure 401 {object} model.AuthError "Missing or invalid token"
// @Failure 422 {object} model.ValidationError "Invalid profile data"
// @Router /user [put]
func (controller *AuthController) UpdateUser(c echo.Context) error {
	var dto model.UpdateProfileDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	user, err := controller.useCase.UpdateProfile(currentUser(c), dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
