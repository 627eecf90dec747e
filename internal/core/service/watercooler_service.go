package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hosteldesk/hostel-portal/internal/api/metrics"
	"github.com/hosteldesk/hostel-portal/internal/core/domain"
	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

// WaterCoolerService implements the cooler-reading use cases.
type WaterCoolerService struct {
	repo ports.WaterCoolerRepository
	log  zerolog.Logger
}

func NewWaterCoolerService(repo ports.WaterCoolerRepository, log zerolog.Logger) *WaterCoolerService {
	return &WaterCoolerService{repo: repo, log: log}
}

// List returns all known cooler readings, alphabetical by name.
func (s *WaterCoolerService) List(ctx context.Context) ([]*domain.WaterCooler, error) {
	return s.repo.FindAll(ctx)
}

// Upsert records a reading for a cooler, creating the record on first write.
// The repository's upsert is atomic, so concurrent writes for the same name
// cannot produce two records.
func (s *WaterCoolerService) Upsert(ctx context.Context, in ports.UpsertCoolerInput) (*domain.WaterCooler, error) {
	name := strings.TrimSpace(in.Name)
	tds := strings.TrimSpace(in.TDS)
	if name == "" || tds == "" {
		return nil, domain.ErrEmptyCoolerFields
	}

	cooler, err := s.repo.Upsert(ctx, name, tds)
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("failed to upsert cooler reading")
		return nil, err
	}

	metrics.CoolerUpsertsTotal.Inc()
	s.log.Info().Str("name", name).Str("tds", tds).Msg("cooler reading recorded")
	return cooler, nil
}
