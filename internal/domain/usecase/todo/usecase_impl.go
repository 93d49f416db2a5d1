package todo

import (
	"strings"
	"time"

	"do-it-now/internal/domain/entity"
	"do-it-now/internal/domain/gateway/db"
	"do-it-now/internal/domain/model"
	"do-it-now/pkg/msg"

	"github.com/google/uuid"
)

const maxTitleLength = 255

// dueAtLayouts are the accepted wire formats for due_at, most specific first.
var dueAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

type todoUseCase struct {
	gateway db.TodoGateway
}

func NewTodoUseCase(gateway db.TodoGateway) UseCase {
	return &todoUseCase{gateway: gateway}
}

func (uc *todoUseCase) List(user *entity.User) ([]entity.Todo, error) {
	todos, err := uc.gateway.FindAllByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []entity.Todo{}
	}
	return todos, nil
}

func (uc *todoUseCase) Create(user *entity.User, dto model.CreateTodoDTO) (*entity.Todo, error) {
	title, dueAt, priority, fields := validateFields(dto.Title, dto.Priority, dto.DueAt)
	if len(fields) > 0 {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.validation"), fields)
	}

	return uc.gateway.Create(entity.Todo{
		UserID:      user.ID,
		Title:       title,
		Description: dto.Description,
		DueAt:       dueAt,
		Priority:    priority,
		Completed:   false,
	})
}

func (uc *todoUseCase) Update(user *entity.User, id uuid.UUID, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	existing, err := uc.findOwned(user, id)
	if err != nil {
		return nil, err
	}

	title, dueAt, priority, fields := validateFields(dto.Title, dto.Priority, dto.DueAt)
	if len(fields) > 0 {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.validation"), fields)
	}

	// id, owner and created_at are never touched
	existing.Title = title
	existing.Description = dto.Description
	existing.DueAt = dueAt
	existing.Priority = priority
	if dto.Completed != nil {
		existing.Completed = *dto.Completed
	}

	return uc.gateway.Update(existing)
}

func (uc *todoUseCase) Delete(user *entity.User, id uuid.UUID) error {
	if _, err := uc.findOwned(user, id); err != nil {
		return err
	}
	return uc.gateway.DeleteByID(id)
}

// findOwned loads the todo and enforces existence before ownership, so an
// unknown id is 404 and somebody else's id is 403.
func (uc *todoUseCase) findOwned(user *entity.User, id uuid.UUID) (*entity.Todo, error) {
	existing, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewNotFoundError(msg.GetMessage("todo.error.not-found"))
	}
	if existing.UserID != user.ID {
		return nil, model.NewForbiddenError(msg.GetMessage("todo.error.forbidden"))
	}
	return existing, nil
}

func validateFields(title, priority, dueAt string) (string, *time.Time, entity.Priority, map[string]string) {
	fields := make(map[string]string)

	title = strings.TrimSpace(title)
	if title == "" {
		fields["title"] = msg.GetMessage("todo.error.title-required")
	} else if len(title) > maxTitleLength {
		fields["title"] = msg.GetMessage("todo.error.title-max")
	}

	p := entity.Priority(priority)
	if !p.IsValid() {
		fields["priority"] = msg.GetMessage("todo.error.priority-invalid")
	}

	var due *time.Time
	if dueAt != "" {
		parsed, ok := parseDueAt(dueAt)
		if !ok {
			fields["due_at"] = msg.GetMessage("todo.error.due-at-invalid")
		} else {
			due = &parsed
		}
	}

	return title, due, p, fields
}

func parseDueAt(value string) (time.Time, bool) {
	for _, layout := range dueAtLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
