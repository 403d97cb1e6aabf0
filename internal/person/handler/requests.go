package handler

import (
	"time"

	"peopledir/internal/person/models"
	dErrors "peopledir/pkg/domain-errors"
)

// CreatePersonRequest is the HTTP request body for POST /persons.
//
// Name carries no constraint: empty names are stored as-is. The birth date
// must parse as a calendar date, but its value is otherwise unchecked.
type CreatePersonRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`

	// Parsed values (populated by Validate)
	parsedBirthDate time.Time
}

// Validate parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CreatePersonRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if r.BirthDate == "" {
		return dErrors.New(dErrors.CodeValidation, "birth_date is required")
	}
	birthDate, err := time.Parse(models.BirthDateLayout, r.BirthDate)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "birth_date must be formatted as YYYY-MM-DD")
	}
	r.parsedBirthDate = birthDate

	return nil
}

// ParsedBirthDate returns the parsed birth date.
func (r *CreatePersonRequest) ParsedBirthDate() time.Time {
	return r.parsedBirthDate
}
