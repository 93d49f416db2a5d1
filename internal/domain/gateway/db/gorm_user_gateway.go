package db

import (
	"errors"

	"do-it-now/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindByID(id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := gateway.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (gateway *GormUserGateway) Create(user entity.User) (*entity.User, error) {
	if err := gateway.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) Update(user *entity.User) (*entity.User, error) {
	if err := gateway.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
