package todo

import (
	"do-it-now/internal/domain/entity"
	"do-it-now/internal/domain/model"

	"github.com/google/uuid"
)

type UseCase interface {
	List(user *entity.User) ([]entity.Todo, error)
	Create(user *entity.User, dto model.CreateTodoDTO) (*entity.Todo, error)
	Update(user *entity.User, id uuid.UUID, dto model.UpdateTodoDTO) (*entity.Todo, error)
	Delete(user *entity.User, id uuid.UUID) error
}
