package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sentinel candidate references for non-choice votes.
const (
	BlankVote = "blank"
	NullVote  = "null"
)

// Vote keeps the candidate reference as a plain string, a weak reference:
// deleting a candidate leaves its votes in place.
type Vote struct {
	ID                 uuid.UUID `json:"id"`
	CandidateRef       string    `json:"candidate_ref"`
	RegistrationNumber string    `json:"registration_number"`
	Position           string    `json:"position"`
	CreatedAt          time.Time `json:"created_at"`
}

func SentinelRef(ref string) bool {
	return ref == BlankVote || ref == NullVote
}
