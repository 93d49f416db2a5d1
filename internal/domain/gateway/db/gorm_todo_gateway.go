package db

import (
	"errors"

	"do-it-now/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAllByUserID(userID uuid.UUID) ([]entity.Todo, error) {
	var todos []entity.Todo
	// id breaks created_at ties so re-fetches never reorder
	err := gateway.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByID(id uuid.UUID) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.First(&todo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	if err := gateway.DB.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Update(todo *entity.Todo) (*entity.Todo, error) {
	// Save writes every column, including completed=false and a cleared due_at
	if err := gateway.DB.Save(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

func (gateway *GormTodoGateway) DeleteByID(id uuid.UUID) error {
	return gateway.DB.Delete(&entity.Todo{}, "id = ?", id).Error
}
