package domain

import (
	"time"

	"github.com/google/uuid"
)

// Voter is identified externally by its registration number ("matrícula").
// HasVoted flips to true exactly once, when a ballot is accepted.
type Voter struct {
	ID                 uuid.UUID  `json:"id"`
	RegistrationNumber string     `json:"registration_number"`
	Name               string     `json:"name"`
	GroupLabel         string     `json:"group_label,omitempty"`
	HasVoted           bool       `json:"has_voted"`
	VotedAt            *time.Time `json:"voted_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
