package handler

import (
	"time"

	"peopledir/internal/person/models"
)

// PersonResponse is the HTTP representation of a person.
type PersonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
}

// ListPersonsResponse is the HTTP response for GET /persons.
type ListPersonsResponse struct {
	Persons []*PersonResponse `json:"persons"`
}

// FromPerson converts a domain person to an HTTP response.
func FromPerson(p *models.Person) *PersonResponse {
	return &PersonResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		BirthDate: p.BirthDate.Format(models.BirthDateLayout),
		CreatedAt: p.CreatedAt,
	}
}

// FromPersons converts a listing to its HTTP envelope. The persons field is
// always present, as an empty array when nothing is stored.
func FromPersons(persons []*models.Person) *ListPersonsResponse {
	out := &ListPersonsResponse{Persons: make([]*PersonResponse, 0, len(persons))}
	for _, p := range persons {
		out.Persons = append(out.Persons, FromPerson(p))
	}
	return out
}
