// Package redis backs the duplicate-submission guard for complaints. The
// portal keeps no other state in Redis; when the backend is unreachable the
// guard is simply not wired and submissions skip the duplicate check.
package redis

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

// submissionTTL is the window during which a resubmission of the same
// complaint by the same student counts as a duplicate.
const submissionTTL = 2 * time.Minute

const defaultDialTimeout = 3 * time.Second

// Config carries the connection settings for the guard backend.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect dials the Redis instance that stores submission fingerprints and
// verifies it with a ping. Callers treat a nil client as "guard disabled".
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// SubmissionGuard remembers recent complaint submissions so that an
// accidental double-submit within submissionTTL is rejected instead of
// creating a second record.
type SubmissionGuard struct {
	client *redis.Client
}

func NewSubmissionGuard(client *redis.Client) *SubmissionGuard {
	return &SubmissionGuard{client: client}
}

// IsDuplicate reports whether the same student already submitted this
// complaint within the TTL window.
func (g *SubmissionGuard) IsDuplicate(ctx context.Context, email string, in ports.SubmitComplaintInput) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(email, in)).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard exists: %w", err)
	}
	return n > 0, nil
}

// Mark records a submission fingerprint after the complaint is stored.
func (g *SubmissionGuard) Mark(ctx context.Context, email string, in ports.SubmitComplaintInput) error {
	if err := g.client.Set(ctx, g.key(email, in), 1, submissionTTL).Err(); err != nil {
		return fmt.Errorf("submission guard set: %w", err)
	}
	return nil
}

// key fingerprints a submission by student and content. Fields are trimmed so
// stray whitespace does not defeat the guard.
func (g *SubmissionGuard) key(email string, in ports.SubmitComplaintInput) string {
	h := fnv.New32a()
	h.Write([]byte(strings.TrimSpace(in.RoomNumber)))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.TrimSpace(in.Category)))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.TrimSpace(in.Description)))
	return fmt.Sprintf("complaint:%s:%08x", strings.TrimSpace(email), h.Sum32())
}
