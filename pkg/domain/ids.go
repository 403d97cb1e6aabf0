// Package domain holds typed identifiers shared across layers. Typed IDs keep
// the compiler from accepting one entity's identifier where another's is
// expected.
package domain

import (
	"github.com/google/uuid"

	dErrors "peopledir/pkg/domain-errors"
)

// PersonID identifies a person record. It is generated by the create use case
// and never supplied by callers or stores.
type PersonID uuid.UUID

// NewPersonID returns a fresh random identifier.
func NewPersonID() PersonID {
	return PersonID(uuid.New())
}

// ParsePersonID parses an identifier arriving at a trust boundary.
// IDs must be valid, non-empty, non-nil UUIDs.
func ParsePersonID(s string) (PersonID, error) {
	if s == "" {
		return PersonID{}, dErrors.New(dErrors.CodeInvalidInput, "person id is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return PersonID{}, dErrors.New(dErrors.CodeInvalidInput, "person id must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return PersonID{}, dErrors.New(dErrors.CodeInvalidInput, "person id must not be the nil UUID")
	}
	return PersonID(parsed), nil
}

func (id PersonID) String() string {
	return uuid.UUID(id).String()
}

func (id PersonID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText makes PersonID render as the canonical UUID string in JSON.
func (id PersonID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText accepts any valid non-nil UUID string.
func (id *PersonID) UnmarshalText(text []byte) error {
	parsed, err := ParsePersonID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
