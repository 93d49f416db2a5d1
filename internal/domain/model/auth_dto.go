package model

import "do-it-now/internal/domain/entity"

type RegisterDTO struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileDTO struct {
	Name string `json:"name"`
}

// AuthResponse is the register/login payload: the plaintext bearer token and
// the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
