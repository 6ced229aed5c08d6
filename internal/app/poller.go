package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/five82/slicer/internal/content"
)

// Readiness polling cadence: up to 30 seconds for sources still being
// written when the program starts.
const (
	readyInterval = 100 * time.Millisecond
	readyAttempts = 300
)

// readiness is what waitReady polls.
type readiness interface {
	Ready(ids []string) error
}

// waitReady polls until every source can be built. Unknown identifiers and
// unknown kinds fail at once since waiting cannot fix them.
func waitReady(ctx context.Context, r readiness, ids []string, interval time.Duration, attempts int) error {
	if attempts <= 0 {
		attempts = 1
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var err error
	for attempt := 1; ; attempt++ {
		if err = r.Ready(ids); err == nil {
			return nil
		}
		if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrUnknownKind) {
			return err
		}
		if attempt >= attempts {
			return fmt.Errorf("not ready after %d attempts: %w", attempts, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
