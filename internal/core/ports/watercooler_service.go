package ports

import (
	"context"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
)

// UpsertCoolerInput carries an admin-submitted cooler reading.
type UpsertCoolerInput struct {
	Name string
	TDS  string
}

// WaterCoolerService defines the use-case operations for cooler readings.
type WaterCoolerService interface {
	// List returns all known cooler readings sorted by name. Public; coolers
	// with no record yet simply do not appear.
	List(ctx context.Context) ([]*domain.WaterCooler, error)
	// Upsert records a reading for a cooler, creating the record on first
	// write. Both fields are trimmed; empty values are rejected.
	Upsert(ctx context.Context, in UpsertCoolerInput) (*domain.WaterCooler, error)
}
