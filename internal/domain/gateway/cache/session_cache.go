package cache

import (
	"context"

	"do-it-now/internal/domain/entity"
)

// SessionCache is a best-effort cache of authenticated identities keyed by
// token hash. A miss or a cache failure is never an error: callers fall back
// to the database.
type SessionCache interface {
	GetUser(ctx context.Context, tokenHash string) (*entity.User, bool)
	PutUser(ctx context.Context, tokenHash string, user *entity.User)
	Forget(ctx context.Context, tokenHashes ...string)
}
