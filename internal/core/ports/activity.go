package ports

import (
	"context"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// ActivityRecorder consumes auth-flow events for the activity trail.
type ActivityRecorder interface {
	Record(ctx context.Context, event domain.ActivityEvent) error
}

// ActivitySink accepts events without blocking the auth flow; delivery is
// best effort and asynchronous.
type ActivitySink interface {
	Enqueue(event domain.ActivityEvent)
}
