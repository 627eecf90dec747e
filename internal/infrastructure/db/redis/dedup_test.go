package redis

import (
	"strings"
	"testing"

	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

func TestSubmissionGuardKeyIgnoresWhitespace(t *testing.T) {
	g := NewSubmissionGuard(nil)

	clean := g.key("amit@hostel.edu", ports.SubmitComplaintInput{
		RoomNumber:  "B-204",
		Category:    "Plumbing",
		Description: "tap leaking",
	})
	padded := g.key("amit@hostel.edu", ports.SubmitComplaintInput{
		RoomNumber:  "  B-204 ",
		Category:    " Plumbing",
		Description: " tap leaking ",
	})
	if clean != padded {
		t.Fatalf("keys differ for whitespace variants: %q vs %q", clean, padded)
	}
}

func TestSubmissionGuardKeyScopedToStudentAndContent(t *testing.T) {
	g := NewSubmissionGuard(nil)

	in := ports.SubmitComplaintInput{
		RoomNumber:  "B-204",
		Category:    "Plumbing",
		Description: "tap leaking",
	}

	base := g.key("amit@hostel.edu", in)
	if !strings.HasPrefix(base, "complaint:amit@hostel.edu:") {
		t.Fatalf("key %q not scoped to student email", base)
	}

	if other := g.key("neha@hostel.edu", in); other == base {
		t.Fatal("different students produced the same key")
	}

	changed := in
	changed.Description = "tap dripping"
	if other := g.key("amit@hostel.edu", changed); other == base {
		t.Fatal("different descriptions produced the same key")
	}
}
