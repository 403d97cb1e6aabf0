package service

import (
	"context"
	"log/slog"

	"peopledir/internal/audit"
	personmetrics "peopledir/internal/person/metrics"
	"peopledir/internal/person/models"
	id "peopledir/pkg/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mocks.go -package=mocks

// PersonStore is the persistence capability the use cases depend on. Stores
// are interface-driven so the in-memory, PostgreSQL, and Redis adapters swap
// without rewiring business code.
type PersonStore interface {
	Add(ctx context.Context, p *models.Person) error
	FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error)
	List(ctx context.Context) ([]*models.Person, error)
}

// AuditPublisher records person lifecycle events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates person use cases over the store. Each operation is a
// single store round-trip; there is no cross-request state and no retry.
type Service struct {
	persons PersonStore
	logger  *slog.Logger
	metrics *personmetrics.Metrics
	audit   AuditPublisher
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *personmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

// New constructs the person service with required dependencies.
func New(persons PersonStore, opts ...Option) *Service {
	s := &Service{persons: persons}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
