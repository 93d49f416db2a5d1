package db

import (
	"do-it-now/internal/domain/entity"

	"github.com/google/uuid"
)

// UserGateway persists users. Find methods return (nil, nil) when no row
// matches.
type UserGateway interface {
	FindByID(id uuid.UUID) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)

	Create(user entity.User) (*entity.User, error)
	Update(user *entity.User) (*entity.User, error)
}
