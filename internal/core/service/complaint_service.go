package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hosteldesk/hostel-portal/internal/api/metrics"
	"github.com/hosteldesk/hostel-portal/internal/core/domain"
	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

// DuplicateGuard abstracts the duplicate-submission store (Redis). A nil
// guard disables the check.
type DuplicateGuard interface {
	// IsDuplicate reports whether an identical complaint from the same
	// student was recorded recently.
	IsDuplicate(ctx context.Context, email string, in ports.SubmitComplaintInput) (bool, error)
	// Mark records a submission so near-term replays are caught.
	Mark(ctx context.Context, email string, in ports.SubmitComplaintInput) error
}

// ComplaintService implements the complaint use cases.
type ComplaintService struct {
	repo  ports.ComplaintRepository
	guard DuplicateGuard
	log   zerolog.Logger
}

func NewComplaintService(repo ports.ComplaintRepository, guard DuplicateGuard, log zerolog.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, guard: guard, log: log}
}

// Submit files a new complaint. The student identity is bound from caller;
// anything the payload claims about it is ignored upstream by construction.
func (s *ComplaintService) Submit(ctx context.Context, caller domain.Identity, in ports.SubmitComplaintInput) (*domain.Complaint, error) {
	if !domain.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if len(in.Description) > domain.MaxDescriptionLen {
		return nil, domain.ErrDescriptionTooLong
	}

	if s.guard != nil {
		isDup, err := s.guard.IsDuplicate(ctx, caller.Email, in)
		if err != nil {
			s.log.Warn().Err(err).Str("email", caller.Email).Msg("duplicate check failed, accepting anyway")
		} else if isDup {
			metrics.DuplicateSubmissionsTotal.Inc()
			return nil, domain.ErrDuplicateComplaint
		}
	}

	complaint := &domain.Complaint{
		StudentName:  caller.Name,
		StudentEmail: caller.Email,
		RoomNumber:   in.RoomNumber,
		Category:     in.Category,
		Description:  in.Description,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, complaint)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create complaint")
		return nil, err
	}

	if s.guard != nil {
		if err := s.guard.Mark(ctx, caller.Email, in); err != nil {
			s.log.Warn().Err(err).Msg("failed to mark submission for dedup")
		}
	}

	metrics.ComplaintsCreatedTotal.WithLabelValues(in.Category).Inc()
	s.log.Info().Str("id", created.ID).Str("email", caller.Email).Str("category", in.Category).Msg("complaint filed")
	return created, nil
}

// ListMine returns the caller's own complaints, newest first. Scoping is by
// the session email, so one student can never read another's records.
func (s *ComplaintService) ListMine(ctx context.Context, caller domain.Identity) ([]*domain.Complaint, error) {
	return s.repo.FindByStudentEmail(ctx, caller.Email)
}

// ListAll returns every complaint, newest first.
func (s *ComplaintService) ListAll(ctx context.Context) ([]*domain.Complaint, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus moves a complaint to a new triage state. Values outside the
// enumerated set are rejected before the store is touched.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Complaint, error) {
	next := domain.ComplaintStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	metrics.ComplaintStatusUpdatesTotal.WithLabelValues(status).Inc()
	s.log.Info().Str("id", id).Str("status", status).Msg("complaint status updated")
	return updated, nil
}

// Delete removes a complaint permanently.
func (s *ComplaintService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ComplaintsDeletedTotal.Inc()
	s.log.Info().Str("id", id).Msg("complaint deleted")
	return nil
}
