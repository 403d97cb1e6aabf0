package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	id "peopledir/pkg/domain"
	"peopledir/pkg/requestcontext"
)

// Sink ships audit events to an external system (e.g. Kafka). Sinks may be
// asynchronous internally; Publish must not block on delivery.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Publisher captures structured audit events. Appending to the store is
// synchronous; external delivery goes through a bounded inbox drained by a
// Worker so request latency never depends on the broker.
type Publisher struct {
	store  Store
	inbox  chan<- Event
	logger *slog.Logger
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithInbox routes emitted events to a worker-drained channel for external
// delivery.
func WithInbox(inbox chan<- Event) Option {
	return func(p *Publisher) {
		p.inbox = inbox
	}
}

// WithLogger sets a logger for delivery problems.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit records an event. Missing identity and timestamp fields are filled
// here so callers only describe what happened. When the inbox is full the
// event is dropped from external delivery (the in-process trail still has
// it) and the drop is logged.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	if err := p.store.Append(ctx, event); err != nil {
		return err
	}

	if p.inbox != nil {
		select {
		case p.inbox <- event:
		default:
			if p.logger != nil {
				p.logger.WarnContext(ctx, "audit inbox full, dropping external delivery",
					"action", event.Action,
					"event_id", event.ID,
				)
			}
		}
	}
	return nil
}

// List returns the trail for one person.
func (p *Publisher) List(ctx context.Context, personID id.PersonID) ([]Event, error) {
	return p.store.ListByPerson(ctx, personID)
}
