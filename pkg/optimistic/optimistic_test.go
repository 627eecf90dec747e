package optimistic

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type complaint struct {
	ID     string
	Status string
}

// recordingNotifier captures surfaced notifications.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func seed() []complaint {
	return []complaint{
		{ID: "1", Status: "Pending"},
		{ID: "2", Status: "In Progress"},
		{ID: "3", Status: "Resolved"},
	}
}

func TestMutate_CommitKeepsOptimisticState(t *testing.T) {
	n := &recordingNotifier{}
	s := NewStore(seed(), n)

	err := s.Mutate(context.Background(),
		UpdateWhere(
			func(c complaint) bool { return c.ID == "1" },
			func(c complaint) complaint { c.Status = "Resolved"; return c },
		),
		func(context.Context) error { return nil },
		"Status updated!",
	)
	if err != nil {
		t.Fatalf("mutate failed: %v", err)
	}
	if s.State() != Committed {
		t.Fatalf("expected Committed, got %v", s.State())
	}

	items := s.Items()
	if items[0].Status != "Resolved" {
		t.Fatalf("optimistic update not kept: %+v", items[0])
	}
	if len(n.successes) != 1 || n.successes[0] != "Status updated!" {
		t.Fatalf("expected success notification, got %+v", n)
	}
	if len(n.errors) != 0 {
		t.Fatalf("unexpected error notification: %+v", n.errors)
	}
}

func TestMutate_OptimisticDeleteRollsBackOnFailure(t *testing.T) {
	n := &recordingNotifier{}
	before := seed()
	s := NewStore(before, n)

	// The record disappears locally the moment the mutation is applied and
	// reappears identical to its pre-delete state when the call fails.
	callErr := errors.New("failed to delete complaint")
	var midFlight []complaint
	err := s.Mutate(context.Background(),
		RemoveWhere(func(c complaint) bool { return c.ID == "2" }),
		func(context.Context) error {
			midFlight = s.Items()
			return callErr
		},
		"Complaint deleted!",
	)
	if !errors.Is(err, callErr) {
		t.Fatalf("expected call error to propagate, got %v", err)
	}
	if s.State() != RolledBack {
		t.Fatalf("expected RolledBack, got %v", s.State())
	}

	if len(midFlight) != 2 {
		t.Fatalf("delete should be visible while the call is in flight, got %d items", len(midFlight))
	}
	if !reflect.DeepEqual(s.Items(), before) {
		t.Fatalf("rollback must restore the snapshot verbatim:\nwant %+v\ngot  %+v", before, s.Items())
	}
	if len(n.errors) != 1 || n.errors[0] != "failed to delete complaint" {
		t.Fatalf("expected error notification with the failure reason, got %+v", n.errors)
	}
	if len(n.successes) != 0 {
		t.Fatalf("unexpected success notification: %+v", n.successes)
	}
}

func TestMutate_LaterResponseWins(t *testing.T) {
	s := NewStore(seed(), nil)

	// First mutation applies, then a second starts before the first resolves.
	// The second one's rollback restores the snapshot it took, which already
	// contains the first mutation: last write wins, accepted behaviour.
	first := UpdateWhere(
		func(c complaint) bool { return c.ID == "1" },
		func(c complaint) complaint { c.Status = "Resolved"; return c },
	)
	if err := s.Mutate(context.Background(), first, func(context.Context) error { return nil }, "ok"); err != nil {
		t.Fatalf("first mutate failed: %v", err)
	}

	second := RemoveWhere(func(c complaint) bool { return c.ID == "3" })
	_ = s.Mutate(context.Background(), second, func(context.Context) error { return errors.New("boom") }, "ok")

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("rollback should restore the post-first-mutation list, got %d items", len(items))
	}
	if items[0].Status != "Resolved" {
		t.Fatalf("first mutation lost by second rollback: %+v", items[0])
	}
}

func TestReplace_ResetsState(t *testing.T) {
	s := NewStore(seed(), nil)
	_ = s.Mutate(context.Background(),
		RemoveWhere(func(c complaint) bool { return c.ID == "1" }),
		func(context.Context) error { return errors.New("boom") },
		"ok",
	)
	if s.State() != RolledBack {
		t.Fatalf("expected RolledBack, got %v", s.State())
	}

	fresh := []complaint{{ID: "9", Status: "Pending"}}
	s.Replace(fresh)
	if s.State() != Idle {
		t.Fatalf("replace should reset to Idle, got %v", s.State())
	}
	if !reflect.DeepEqual(s.Items(), fresh) {
		t.Fatalf("replace did not swap the list")
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := NewStore(seed(), nil)
	items := s.Items()
	items[0].Status = "Tampered"

	if s.Items()[0].Status == "Tampered" {
		t.Fatalf("Items must return a copy, not the backing slice")
	}
}
