package person

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"peopledir/internal/person/models"
	id "peopledir/pkg/domain"
	"peopledir/pkg/platform/sentinel"
)

// Schema is the DDL for the persons table. The integration harness applies it
// directly; operators apply it once when provisioning the database.
const Schema = `
CREATE TABLE IF NOT EXISTS persons (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    birth_date DATE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
`

// PostgresStore persists persons in PostgreSQL. The primary key is the only
// index; the specified operations need nothing else.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed person store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Add(ctx context.Context, p *models.Person) error {
	query := `
		INSERT INTO persons (id, name, birth_date, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ID.String(),
		p.Name,
		p.BirthDate,
		p.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("add person: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("add person: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	query := `
		SELECT id, name, birth_date, created_at
		FROM persons
		WHERE id = $1
	`
	row := s.db.QueryRowContext(ctx, query, personID.String())
	p, err := scanPerson(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find person: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return p, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Person, error) {
	query := `
		SELECT id, name, birth_date, created_at
		FROM persons
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	defer rows.Close()

	persons := make([]*models.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list persons: %w", errors.Join(sentinel.ErrUnavailable, err))
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return persons, nil
}

func scanPerson(scan func(dest ...any) error) (*models.Person, error) {
	var (
		rawID string
		p     models.Person
	)
	if err := scan(&rawID, &p.Name, &p.BirthDate, &p.CreatedAt); err != nil {
		return nil, err
	}
	personID, err := id.ParsePersonID(rawID)
	if err != nil {
		return nil, err
	}
	p.ID = personID
	// DATE columns come back at midnight in the session zone; pin them to UTC.
	p.BirthDate = models.NormalizeBirthDate(p.BirthDate)
	return &p, nil
}
