package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string        `gorm:"size:255;not null" json:"name"`
	Email        string        `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string        `gorm:"size:255;not null" json:"-"`
	Todos        []Todo        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Tokens       []AccessToken `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
