package ports

import (
	"context"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
)

// WaterCoolerRepository defines persistence operations for cooler readings.
type WaterCoolerRepository interface {
	// FindAll returns every cooler record, sorted alphabetically by name.
	FindAll(ctx context.Context) ([]*domain.WaterCooler, error)
	// Upsert atomically updates the record with the given name or creates it
	// when absent, overwriting tds and lastUpdated. The name uniqueness
	// invariant must hold under concurrent writes.
	Upsert(ctx context.Context, name, tds string) (*domain.WaterCooler, error)
}
