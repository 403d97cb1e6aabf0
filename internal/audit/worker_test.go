package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *captureSink) Publish(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *captureSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestWorkerDeliversEvents(t *testing.T) {
	sink := &captureSink{}
	inbox := make(chan Event, 4)
	worker := NewWorker(sink, inbox, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	for i := 0; i < 3; i++ {
		inbox <- Event{ID: uuid.New(), Action: ActionPersonCreated}
	}

	require.Eventually(t, func() bool { return sink.count() == 3 },
		time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWorkerSurvivesDeliveryFailure(t *testing.T) {
	sink := &captureSink{err: errors.New("broker down")}
	inbox := make(chan Event, 1)
	worker := NewWorker(sink, inbox, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	inbox <- Event{ID: uuid.New(), Action: ActionPersonCreated}

	// Worker keeps running after a failed publish.
	require.Eventually(t, func() bool { return len(inbox) == 0 },
		time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
