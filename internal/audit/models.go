// Package audit provides an append-only trail of record-changing operations.
// Creation is the only mutation in this system, so the trail is small, but it
// follows the same shape as any other service: events are appended to a store
// for in-process queries and optionally shipped to Kafka for downstream
// consumers.
package audit

import (
	"time"

	"github.com/google/uuid"

	id "peopledir/pkg/domain"
)

// Actions recorded on the trail.
const (
	ActionPersonCreated = "person.created"
)

// Event is a single audit record. Events are immutable once emitted.
type Event struct {
	ID        uuid.UUID   `json:"id"`
	Action    string      `json:"action"`
	PersonID  id.PersonID `json:"person_id"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
