package ports

import (
	"context"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
)

// ComplaintRepository defines persistence operations for complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	// FindByStudentEmail returns the complaints filed by one student,
	// newest first.
	FindByStudentEmail(ctx context.Context, email string) ([]*domain.Complaint, error)
	// FindAll returns every complaint, newest first.
	FindAll(ctx context.Context) ([]*domain.Complaint, error)
	// UpdateStatus sets the status of the complaint with the given id and
	// returns the updated record. Returns domain.ErrComplaintNotFound when
	// no record matches.
	UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error)
	// Delete removes the complaint with the given id. Returns
	// domain.ErrComplaintNotFound when no record matches.
	Delete(ctx context.Context, id string) error
}
