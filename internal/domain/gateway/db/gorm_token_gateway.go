package db

import (
	"errors"
	"time"

	"do-it-now/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormAccessTokenGateway struct {
	DB *gorm.DB
}

var _ AccessTokenGateway = (*GormAccessTokenGateway)(nil)

func NewGormAccessTokenGateway(db *gorm.DB) *GormAccessTokenGateway {
	return &GormAccessTokenGateway{DB: db}
}

func (gateway *GormAccessTokenGateway) Create(token entity.AccessToken) (*entity.AccessToken, error) {
	if err := gateway.DB.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (gateway *GormAccessTokenGateway) FindByHash(hash string) (*entity.AccessToken, error) {
	var token entity.AccessToken
	err := gateway.DB.First(&token, "token_hash = ?", hash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (gateway *GormAccessTokenGateway) FindByUserID(userID uuid.UUID) ([]entity.AccessToken, error) {
	var tokens []entity.AccessToken
	if err := gateway.DB.Find(&tokens, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (gateway *GormAccessTokenGateway) TouchLastUsed(id uuid.UUID, at time.Time) error {
	return gateway.DB.Model(&entity.AccessToken{}).
		Where("id = ?", id).
		Update("last_used_at", at).Error
}

func (gateway *GormAccessTokenGateway) DeleteByHash(hash string) error {
	return gateway.DB.Delete(&entity.AccessToken{}, "token_hash = ?", hash).Error
}

func (gateway *GormAccessTokenGateway) DeleteExpired(now time.Time) (int64, error) {
	result := gateway.DB.Delete(&entity.AccessToken{}, "expires_at IS NOT NULL AND expires_at < ?", now)
	return result.RowsAffected, result.Error
}
