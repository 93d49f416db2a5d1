package health

import (
	"do-it-now/internal/domain/model"
)

type UseCase interface {
	CheckHealth() model.HealthResponse
}
