package health

import (
	"testing"

	"do-it-now/internal/domain/model"
)

type stubHealthGateway struct {
	status model.HealthStatus
}

func (s stubHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

func TestCheckHealth(t *testing.T) {
	cases := []struct {
		name    string
		db      model.HealthStatus
		cache   model.HealthStatus
		overall model.HealthStatus
	}{
		{"all up", model.StatusUp, model.StatusUp, model.StatusUp},
		{"db down", model.StatusDown, model.StatusUp, model.StatusDown},
		{"cache down", model.StatusUp, model.StatusDown, model.StatusDown},
		{"cache disabled", model.StatusUp, model.StatusUnknown, model.StatusUp},
		{"db down cache disabled", model.StatusDown, model.StatusUnknown, model.StatusDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			useCase := NewHealthUseCase(stubHealthGateway{tc.db}, stubHealthGateway{tc.cache})

			response := useCase.CheckHealth()
			if response.Status != tc.overall {
				t.Errorf("overall = %s, want %s", response.Status, tc.overall)
			}
			if response.Database.Status != tc.db || response.Cache.Status != tc.cache {
				t.Errorf("components = %s/%s, want %s/%s",
					response.Database.Status, response.Cache.Status, tc.db, tc.cache)
			}
		})
	}
}
