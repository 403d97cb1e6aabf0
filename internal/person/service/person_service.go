package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"peopledir/internal/audit"
	"peopledir/internal/person/models"
	id "peopledir/pkg/domain"
	dErrors "peopledir/pkg/domain-errors"
	"peopledir/pkg/platform/sentinel"
	"peopledir/pkg/requestcontext"
)

var tracer = otel.Tracer("peopledir/internal/person/service")

// CreateParams carries the caller-supplied fields of a creation request.
// There is deliberately no ID field: identity is generated here and nowhere
// else.
type CreateParams struct {
	Name      string
	BirthDate time.Time
}

// Create generates a fresh identity, assembles the person, and persists it.
// Identical params on repeated calls produce distinct persons; creation is
// not idempotent by design of the contract. No validation happens here —
// empty names and any date are accepted.
func (s *Service) Create(ctx context.Context, params CreateParams) (*models.Person, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "PersonService.Create")
	defer span.End()

	personID := id.NewPersonID()
	p, err := models.NewPerson(personID, params.Name, params.BirthDate, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	if err := s.persons.Add(ctx, p); err != nil {
		return nil, wrapStoreErr(err, "failed to add person")
	}

	// Ids are generated fresh per create, so conflicts cannot occur in
	// practice; the contract above still tolerates a store-level rejection.

	s.emitCreated(ctx, p)
	s.metrics.IncrementPersonsCreated()
	s.metrics.ObserveCreate(start)
	span.SetAttributes(attribute.String("person.id", p.ID.String()))

	return p, nil
}

// Get returns the person with the given identity. An absent record is a
// normal outcome reported as CodeNotFound, not an internal failure.
func (s *Service) Get(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "PersonService.Get",
		trace.WithAttributes(attribute.String("person.id", personID.String())))
	defer span.End()

	if personID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "person id is required")
	}

	p, err := s.persons.FindByID(ctx, personID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "person not found")
		}
		return nil, wrapStoreErr(err, "failed to find person")
	}

	s.metrics.ObserveGet(start)
	return p, nil
}

// List returns every stored person. Order is store-defined; an empty store
// yields an empty slice.
func (s *Service) List(ctx context.Context) ([]*models.Person, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "PersonService.List")
	defer span.End()

	persons, err := s.persons.List(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list persons")
	}

	s.metrics.ObserveList(start)
	return persons, nil
}

// emitCreated records the audit event. The trail is ops-grade here, not a
// compliance record, so a failed emit is logged and the create still succeeds.
func (s *Service) emitCreated(ctx context.Context, p *models.Person) {
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		Action:   audit.ActionPersonCreated,
		PersonID: p.ID,
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"action", audit.ActionPersonCreated,
			"person_id", p.ID,
			"error", err,
		)
	}
}

// wrapStoreErr translates store sentinels into coded domain errors. Failures
// pass through with their category intact; nothing is suppressed or retried.
func wrapStoreErr(err error, message string) error {
	switch {
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "person id already exists")
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "person store unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, message)
	}
}
