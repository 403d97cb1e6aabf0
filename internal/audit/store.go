package audit

import (
	"context"

	id "peopledir/pkg/domain"
)

// Store is the persistence capability for audit events. It is append-only;
// events are never updated or removed.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByPerson(ctx context.Context, personID id.PersonID) ([]Event, error)
}
