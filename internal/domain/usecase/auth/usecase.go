package auth

import (
	"do-it-now/internal/domain/entity"
	"do-it-now/internal/domain/model"
)

type UseCase interface {
	Register(dto model.RegisterDTO) (*model.AuthResponse, error)
	Login(dto model.LoginDTO) (*model.AuthResponse, error)
	Logout(token string) error
	CurrentUser(token string) (*entity.User, error)
	UpdateProfile(user *entity.User, dto model.UpdateProfileDTO) (*entity.User, error)
	SweepExpiredTokens() (int64, error)
}
