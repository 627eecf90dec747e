package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

// stubComplaintService records calls and returns scripted results.
type stubComplaintService struct {
	lastCaller domain.Identity
	lastInput  ports.SubmitComplaintInput
	lastStatus string
	submitted  bool
	updateErr  error
}

func (s *stubComplaintService) Submit(_ context.Context, caller domain.Identity, in ports.SubmitComplaintInput) (*domain.Complaint, error) {
	s.submitted = true
	s.lastCaller = caller
	s.lastInput = in
	return &domain.Complaint{
		ID:           "id-1",
		StudentName:  caller.Name,
		StudentEmail: caller.Email,
		RoomNumber:   in.RoomNumber,
		Category:     in.Category,
		Description:  in.Description,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (s *stubComplaintService) ListMine(_ context.Context, caller domain.Identity) ([]*domain.Complaint, error) {
	s.lastCaller = caller
	return []*domain.Complaint{}, nil
}

func (s *stubComplaintService) ListAll(context.Context) ([]*domain.Complaint, error) {
	return []*domain.Complaint{}, nil
}

func (s *stubComplaintService) UpdateStatus(_ context.Context, id string, status string) (*domain.Complaint, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.lastStatus = status
	return &domain.Complaint{ID: id, Status: domain.ComplaintStatus(status)}, nil
}

func (s *stubComplaintService) Delete(context.Context, string) error { return nil }

func newAuthedContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// What the Auth middleware would have injected.
	c.Set("email", "student@hostel.edu")
	c.Set("name", "A Student")
	return c, rec
}

func TestSubmit_IgnoresSpoofedStudentEmail(t *testing.T) {
	svc := &stubComplaintService{}
	h := NewComplaintHandler(svc)

	// The body claims to be someone else; the handler must bind the student
	// identity from the session claims regardless.
	body := `{"roomNumber":"B-214","category":"Electricity","description":"Fan not working",` +
		`"studentEmail":"victim@hostel.edu","studentName":"Victim"}`
	c, rec := newAuthedContext(t, http.MethodPost, "/complaints", body)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastCaller.Email != "student@hostel.edu" {
		t.Fatalf("caller identity must come from the session, got %q", svc.lastCaller.Email)
	}

	var resp struct {
		Success bool             `json:"success"`
		Data    domain.Complaint `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.StudentEmail != "student@hostel.edu" {
		t.Fatalf("spoofed email persisted: %q", resp.Data.StudentEmail)
	}
}

func TestSubmit_EmptyDescriptionRejected(t *testing.T) {
	svc := &stubComplaintService{}
	h := NewComplaintHandler(svc)

	c, _ := newAuthedContext(t, http.MethodPost, "/complaints",
		`{"roomNumber":"B-214","category":"Electricity","description":""}`)

	err := h.Submit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if svc.submitted {
		t.Fatalf("service must not be called on validation failure")
	}
}

func TestSubmit_MissingFieldsRejected(t *testing.T) {
	svc := &stubComplaintService{}
	h := NewComplaintHandler(svc)

	c, _ := newAuthedContext(t, http.MethodPost, "/complaints", `{"description":"no room or category"}`)

	err := h.Submit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestSubmit_NoSessionRejected(t *testing.T) {
	svc := &stubComplaintService{}
	h := NewComplaintHandler(svc)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/complaints",
		strings.NewReader(`{"roomNumber":"B-214","category":"Electricity","description":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Submit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestListMine_ScopesToSessionEmail(t *testing.T) {
	svc := &stubComplaintService{}
	h := NewComplaintHandler(svc)

	c, rec := newAuthedContext(t, http.MethodGet, "/complaints/me", "")
	if err := h.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastCaller.Email != "student@hostel.edu" {
		t.Fatalf("expected scoping to session email, got %q", svc.lastCaller.Email)
	}
}

func TestUpdateStatus_ValidThenInvalid(t *testing.T) {
	svc := &stubComplaintService{}
	h := NewComplaintHandler(svc)

	c, rec := newAuthedContext(t, http.MethodPatch, "/admin/complaints/id-1", `{"status":"Resolved"}`)
	c.SetParamNames("id")
	c.SetParamValues("id-1")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool             `json:"success"`
		Data    domain.Complaint `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data.Status != domain.StatusResolved {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}

	// Second round: the service rejects the out-of-enum value.
	svc.updateErr = domain.ErrInvalidStatus
	c2, _ := newAuthedContext(t, http.MethodPatch, "/admin/complaints/id-1", `{"status":"Bogus"}`)
	c2.SetParamNames("id")
	c2.SetParamValues("id-1")
	if err := h.UpdateStatus(c2); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	svc := &stubComplaintService{}
	h := NewComplaintHandler(svc)

	c, rec := newAuthedContext(t, http.MethodDelete, "/admin/complaints/id-1", "")
	c.SetParamNames("id")
	c.SetParamValues("id-1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("expected success envelope, got %s", rec.Body.String())
	}
}
