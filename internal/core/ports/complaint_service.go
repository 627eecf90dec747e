package ports

import (
	"context"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
)

// SubmitComplaintInput carries the caller-supplied fields of a new complaint.
// The student's name and email are deliberately absent: they are always taken
// from the authenticated session, never from the payload.
type SubmitComplaintInput struct {
	RoomNumber  string
	Category    string
	Description string
}

// ComplaintService defines the use-case operations for complaints.
type ComplaintService interface {
	// Submit files a new complaint on behalf of caller.
	Submit(ctx context.Context, caller domain.Identity, in SubmitComplaintInput) (*domain.Complaint, error)
	// ListMine returns the caller's own complaints, newest first.
	ListMine(ctx context.Context, caller domain.Identity) ([]*domain.Complaint, error)
	// ListAll returns every complaint, newest first. Admin only; the role
	// check happens at the route level.
	ListAll(ctx context.Context) ([]*domain.Complaint, error)
	// UpdateStatus moves a complaint to one of the enumerated triage states.
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Complaint, error)
	// Delete removes a complaint permanently.
	Delete(ctx context.Context, id string) error
}
