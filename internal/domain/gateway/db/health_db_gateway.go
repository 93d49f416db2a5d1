package db

import (
	"do-it-now/internal/domain/model"
)

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
