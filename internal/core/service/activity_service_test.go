package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

func TestActivityService_RecordAndRecent(t *testing.T) {
	svc := NewActivityService(zerolog.Nop())

	events := []domain.ActivityEvent{
		{Kind: domain.ActivityLogin, Email: "admin@skylines.com", Timestamp: time.Now()},
		{Kind: domain.ActivityLogout, Email: "admin@skylines.com", Timestamp: time.Now()},
		{Kind: domain.ActivityLoginFailed, Email: "ghost@example.com", Timestamp: time.Now()},
	}
	for _, e := range events {
		if err := svc.Record(context.Background(), e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	recent := svc.Recent(0)
	if len(recent) != 3 {
		t.Fatalf("expected full trail, got %d events", len(recent))
	}
	if recent[2].Kind != domain.ActivityLoginFailed {
		t.Fatalf("expected newest last, got %+v", recent)
	}

	last := svc.Recent(2)
	if len(last) != 2 || last[0].Kind != domain.ActivityLogout {
		t.Fatalf("unexpected tail: %+v", last)
	}
}

func TestActivityService_TrailIsBounded(t *testing.T) {
	svc := NewActivityService(zerolog.Nop())

	for i := 0; i < activityTrailCap+10; i++ {
		err := svc.Record(context.Background(), domain.ActivityEvent{
			Kind:  domain.ActivityLogin,
			Email: strconv.Itoa(i) + "@example.com",
		})
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	recent := svc.Recent(0)
	if len(recent) != activityTrailCap {
		t.Fatalf("expected trail capped at %d, got %d", activityTrailCap, len(recent))
	}
	// The oldest 10 events were dropped.
	if recent[0].Email != "10@example.com" {
		t.Fatalf("expected oldest surviving event to be 10@example.com, got %s", recent[0].Email)
	}
}
