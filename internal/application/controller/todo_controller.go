package controller

import (
	"net/http"

	"do-it-now/internal/domain/model"
	"do-it-now/internal/domain/usecase/todo"
	"do-it-now/pkg/msg"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
	authMw  echo.MiddlewareFunc
}

func NewTodoController(api *echo.Group, useCase todo.UseCase, authMw echo.MiddlewareFunc) *TodoController {
	return &TodoController{api: api, useCase: useCase, authMw: authMw}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.List, controller.authMw)
	controller.api.POST("/todos", controller.Create, controller.authMw)
	controller.api.PUT("/todos/:id", controller.Update, controller.authMw)
	controller.api.DELETE("/todos/:id", controller.Delete, controller.authMw)
}

// List godoc
// @Summary List the authenticated user's todos
// @Description All todos owned by the caller, newest first
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Todo "Todos ordered by creation time descending"
// @Failure 401 {object} model.AuthError "Missing or invalid token"
// @Router /todos [get]
func (controller *TodoController) List(c echo.Context) error {
	todos, err := controller.useCase.List(currentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Create godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param todo body model.CreateTodoDTO true "Todo fields"
// @Success 201 {object} entity.Todo "Created todo"
// @Failure 401 {object} model.AuthError "Missing or invalid token"
// @Failure 422 {object} model.ValidationError "Invalid todo data"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := controller.useCase.Create(currentUser(c), dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a todo
// @Description Replace the todo's fields; owner and creation time are immutable
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Todo fields"
// @Success 200 {object} entity.Todo "Updated todo"
// @Failure 401 {object} model.AuthError "Missing or invalid token"
// @Failure 403 {object} model.ForbiddenError "Todo owned by another user"
// @Failure 404 {object} model.NotFoundError "Unknown todo id"
// @Failure 422 {object} model.ValidationError "Invalid todo data"
// @Router /todos/{id} [put]
func (controller *TodoController) Update(c echo.Context) error {
	id, err := parseTodoID(c)
	if err != nil {
		return writeError(c, err)
	}

	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := controller.useCase.Update(currentUser(c), id, dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a todo
// @Description Permanently remove the todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Success 204 "Todo deleted"
// @Failure 401 {object} model.AuthError "Missing or invalid token"
// @Failure 403 {object} model.ForbiddenError "Todo owned by another user"
// @Failure 404 {object} model.NotFoundError "Unknown todo id"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, err := parseTodoID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := controller.useCase.Delete(currentUser(c), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseTodoID treats a malformed id like an unknown one: no todo can ever
// have it.
func parseTodoID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, model.NewNotFoundError(msg.GetMessage("todo.error.not-found"))
	}
	return id, nil
}
