package models

import (
	"time"

	id "peopledir/pkg/domain"
	dErrors "peopledir/pkg/domain-errors"
)

// BirthDateLayout is the wire format for birth dates. Birth dates are calendar
// dates with no time-of-day component.
const BirthDateLayout = "2006-01-02"

// Person is the sole aggregate of this service.
//
// Invariants:
//   - ID is a non-nil UUID assigned exactly once, at creation, by the create
//     use case — never by a store or by the caller
//   - BirthDate carries no time-of-day component (normalized to midnight UTC)
//   - A person is immutable once created; no update or delete exists
//
// Name is free text with no constraint at this layer: empty names and any
// date value are accepted. Whatever the storage layer enforces is the only
// validation this system performs.
type Person struct {
	ID        id.PersonID `json:"id"`
	Name      string      `json:"name"`
	BirthDate time.Time   `json:"birth_date"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewPerson assembles a person from an already-generated identifier.
func NewPerson(personID id.PersonID, name string, birthDate time.Time, now time.Time) (*Person, error) {
	if personID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "person id must be assigned before construction")
	}
	return &Person{
		ID:        personID,
		Name:      name,
		BirthDate: NormalizeBirthDate(birthDate),
		CreatedAt: now.UTC(),
	}, nil
}

// NormalizeBirthDate strips the time-of-day component, keeping only the
// calendar date in UTC.
func NormalizeBirthDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
