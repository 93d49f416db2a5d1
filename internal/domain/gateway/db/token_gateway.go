package db

import (
	"time"

	"do-it-now/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessTokenGateway persists bearer tokens. FindByHash returns (nil, nil)
// when no row matches.
type AccessTokenGateway interface {
	Create(token entity.AccessToken) (*entity.AccessToken, error)
	FindByHash(hash string) (*entity.AccessToken, error)
	FindByUserID(userID uuid.UUID) ([]entity.AccessToken, error)
	TouchLastUsed(id uuid.UUID, at time.Time) error

	DeleteByHash(hash string) error
	// DeleteExpired removes tokens whose expiry is before now and reports how
	// many were removed.
	DeleteExpired(now time.Time) (int64, error)
}
