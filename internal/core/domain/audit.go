package domain

import (
	"time"

	"github.com/google/uuid"
)

const ActionElectionReset = "election_reset"

// AuditEvent records a privileged administrative action. Written in the same
// transaction as the action it describes.
type AuditEvent struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
