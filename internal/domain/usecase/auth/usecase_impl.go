package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/mail"
	"strings"
	"time"

	"do-it-now/internal/domain/entity"
	"do-it-now/internal/domain/gateway/cache"
	"do-it-now/internal/domain/gateway/db"
	"do-it-now/internal/domain/model"
	"do-it-now/pkg/log"
	"do-it-now/pkg/msg"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type authUseCase struct {
	users    db.UserGateway
	tokens   db.AccessTokenGateway
	sessions cache.SessionCache
	tokenTTL time.Duration
}

// NewAuthUseCase wires the authentication service. sessions may be nil when
// no cache is configured; every lookup then goes to the database.
func NewAuthUseCase(users db.UserGateway, tokens db.AccessTokenGateway, sessions cache.SessionCache, tokenTTL time.Duration) UseCase {
	return &authUseCase{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
		tokenTTL: tokenTTL,
	}
}

func (uc *authUseCase) Register(dto model.RegisterDTO) (*model.AuthResponse, error) {
	dto.Name = strings.TrimSpace(dto.Name)
	dto.Email = strings.TrimSpace(strings.ToLower(dto.Email))

	fields := make(map[string]string)
	if dto.Name == "" {
		fields["name"] = msg.GetMessage("auth.error.name-required")
	}
	switch {
	case dto.Email == "":
		fields["email"] = msg.GetMessage("auth.error.email-required")
	case !validEmail(dto.Email):
		fields["email"] = msg.GetMessage("auth.error.email-invalid")
	default:
		taken, err := uc.users.ExistsByEmail(dto.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			fields["email"] = msg.GetMessage("auth.error.email-taken")
		}
	}
	if len(dto.Password) < minPasswordLength {
		fields["password"] = msg.GetMessage("auth.error.password-min")
	} else if dto.Password != dto.PasswordConfirmation {
		fields["password"] = msg.GetMessage("auth.error.password-confirmation")
	}
	if len(fields) > 0 {
		return nil, model.NewValidationError(msg.GetMessage("auth.error.validation"), fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := uc.users.Create(entity.User{
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Infof(msg.GetMessage("auth.log.registered", user.Email))
	return &model.AuthResponse{Token: token, User: user}, nil
}

func (uc *authUseCase) Login(dto model.LoginDTO) (*model.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(dto.Email))

	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	// One generic message for unknown email and wrong password alike
	if user == nil {
		return nil, model.NewAuthError(msg.GetMessage("auth.error.invalid-credentials"))
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)) != nil {
		return nil, model.NewAuthError(msg.GetMessage("auth.error.invalid-credentials"))
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Infof(msg.GetMessage("auth.log.logged-in", user.Email))
	return &model.AuthResponse{Token: token, User: user}, nil
}

func (uc *authUseCase) Logout(token string) error {
	hash := hashToken(token)
	if err := uc.tokens.DeleteByHash(hash); err != nil {
		return err
	}
	if uc.sessions != nil {
		uc.sessions.Forget(context.Background(), hash)
	}
	return nil
}

func (uc *authUseCase) CurrentUser(token string) (*entity.User, error) {
	if token == "" {
		return nil, model.NewAuthError(msg.GetMessage("auth.error.unauthenticated"))
	}
	hash := hashToken(token)

	if uc.sessions != nil {
		if user, ok := uc.sessions.GetUser(context.Background(), hash); ok {
			return user, nil
		}
	}

	record, err := uc.tokens.FindByHash(hash)
	if err != nil {
		return nil, err
	}
	if record == nil || record.Expired(time.Now()) {
		return nil, model.NewAuthError(msg.GetMessage("auth.error.unauthenticated"))
	}

	if err := uc.tokens.TouchLastUsed(record.ID, time.Now()); err != nil {
		log.Errorf("failed to touch token last_used_at: %v", err)
	}

	user, err := uc.users.FindByID(record.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NewAuthError(msg.GetMessage("auth.error.unauthenticated"))
	}

	if uc.sessions != nil {
		uc.sessions.PutUser(context.Background(), hash, user)
	}
	return user, nil
}

func (uc *authUseCase) UpdateProfile(user *entity.User, dto model.UpdateProfileDTO) (*entity.User, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, model.NewValidationError(msg.GetMessage("auth.error.validation"), map[string]string{
			"name": msg.GetMessage("auth.error.name-required"),
		})
	}

	user.Name = name
	updated, err := uc.users.Update(user)
	if err != nil {
		return nil, err
	}

	// Cached identities under every live token still carry the old name
	if uc.sessions != nil {
		tokens, err := uc.tokens.FindByUserID(user.ID)
		if err != nil {
			log.Errorf("failed to list tokens for cache purge: %v", err)
		} else {
			hashes := make([]string, 0, len(tokens))
			for _, t := range tokens {
				hashes = append(hashes, t.TokenHash)
			}
			uc.sessions.Forget(context.Background(), hashes...)
		}
	}

	return updated, nil
}

func (uc *authUseCase) SweepExpiredTokens() (int64, error) {
	return uc.tokens.DeleteExpired(time.Now())
}

// issueToken creates a persisted token row and returns the plaintext secret.
func (uc *authUseCase) issueToken(user *entity.User) (string, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return "", err
	}
	plain := hex.EncodeToString(secret)

	token := entity.AccessToken{
		UserID:    user.ID,
		TokenHash: hashToken(plain),
	}
	if uc.tokenTTL > 0 {
		expiresAt := time.Now().Add(uc.tokenTTL)
		token.ExpiresAt = &expiresAt
	}

	if _, err := uc.tokens.Create(token); err != nil {
		return "", err
	}
	return plain, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
