package db

import (
	"do-it-now/internal/domain/entity"

	"github.com/google/uuid"
)

// TodoGateway persists todos. Find methods return (nil, nil) when no row
// matches.
type TodoGateway interface {
	// FindAllByUserID returns the user's todos newest first. The ordering is
	// stable across reads of unchanged data.
	FindAllByUserID(userID uuid.UUID) ([]entity.Todo, error)
	FindByID(id uuid.UUID) (*entity.Todo, error)

	Create(todo entity.Todo) (*entity.Todo, error)
	Update(todo *entity.Todo) (*entity.Todo, error)
	DeleteByID(id uuid.UUID) error
}
