package submit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/smallrender/sr-submit/internal/constants"
	"github.com/smallrender/sr-submit/internal/models"
)

// Submitter publishes job descriptors into the farm inbox using a
// write-temp-then-rename sequence, so the consumer's directory listing only
// ever sees complete files under their final names. It also enforces the
// client-side cooldown between batches.
//
// Safety across hosts comes entirely from filesystem rename atomicity plus
// the host-qualified filename; there is no cross-host coordination.
type Submitter struct {
	// OnSubmit, if set, is called after each descriptor is published.
	// Used for batch progress reporting.
	OnSubmit func(models.JobDescriptor)

	mu            sync.Mutex
	inboxDir      string
	now           func() time.Time
	cooldownUntil time.Time
}

// NewSubmitter creates a submitter for the given inbox directory.
func NewSubmitter(inboxDir string) *Submitter {
	return &Submitter{
		inboxDir: inboxDir,
		now:      time.Now,
	}
}

// NewSubmitterWithClock creates a submitter with an injected clock, for tests.
func NewSubmitterWithClock(inboxDir string, now func() time.Time) *Submitter {
	s := NewSubmitter(inboxDir)
	s.now = now
	return s
}

// Filename returns the inbox filename for a descriptor:
// <13-digit zero-padded submitted_at_ms>.<hostname>.json. Lexically sortable
// by submission time and collision-free across hosts submitting within the
// same millisecond.
func Filename(desc models.JobDescriptor) string {
	return fmt.Sprintf("%013d.%s.json", desc.SubmittedAtMS, desc.SubmittedByHost)
}

// Submit serializes one descriptor and publishes it atomically. The consumer
// either sees nothing, the .tmp file (which it ignores by suffix), or the
// complete final file - never a partial write under the final name.
func (s *Submitter) Submit(desc models.JobDescriptor) error {
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize descriptor: %w", err)
	}

	finalPath := filepath.Join(s.inboxDir, Filename(desc))
	tmpPath := finalPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write submission: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath) // best effort
		return fmt.Errorf("failed to publish submission: %w", err)
	}
	return nil
}

// SubmitBatch publishes descriptors in order, stopping at the first failure.
// Returns the count submitted before the failure together with the error;
// callers surface both. A request inside the cooldown window is rejected
// with ErrCooldownActive before any filesystem access.
//
// Any batch that published at least one descriptor arms the cooldown.
func (s *Submitter) SubmitBatch(descriptors []models.JobDescriptor) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.now().Before(s.cooldownUntil) {
		return 0, ErrCooldownActive
	}

	submitted := 0
	var firstErr error
	for _, desc := range descriptors {
		if err := s.Submit(desc); err != nil {
			firstErr = err
			break
		}
		submitted++
		if s.OnSubmit != nil {
			s.OnSubmit(desc)
		}
	}

	if submitted > 0 {
		s.cooldownUntil = s.now().Add(constants.SubmitCooldown)
	}
	return submitted, firstErr
}

// CooldownRemaining reports how long until the next batch is accepted.
// Zero means submissions are accepted now.
func (s *Submitter) CooldownRemaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if remaining := s.cooldownUntil.Sub(s.now()); remaining > 0 {
		return remaining
	}
	return 0
}
