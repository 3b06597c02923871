package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

const activityTrailCap = 256

// ActivityService keeps a bounded in-memory trail of auth-flow events and
// logs each one. Oldest entries fall off when the trail is full.
type ActivityService struct {
	log zerolog.Logger

	mu    sync.Mutex
	trail []domain.ActivityEvent
}

func NewActivityService(log zerolog.Logger) *ActivityService {
	return &ActivityService{log: log}
}

// Record appends the event to the trail.
func (s *ActivityService) Record(_ context.Context, event domain.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trail = append(s.trail, event)
	if len(s.trail) > activityTrailCap {
		s.trail = s.trail[len(s.trail)-activityTrailCap:]
	}

	s.log.Debug().
		Str("kind", string(event.Kind)).
		Str("email", event.Email).
		Msg("activity recorded")
	return nil
}

// Recent returns up to n most recent events, newest last.
func (s *ActivityService) Recent(n int) []domain.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || n > len(s.trail) {
		n = len(s.trail)
	}
	out := make([]domain.ActivityEvent, n)
	copy(out, s.trail[len(s.trail)-n:])
	return out
}
