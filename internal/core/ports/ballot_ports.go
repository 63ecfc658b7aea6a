package ports

import (
	"context"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/google/uuid"
)

type VoteRepository interface {
	// CastBallot appends the vote and marks the voter as voted in a single
	// transaction. It returns domain.ErrAlreadyVoted when the voter's
	// has_voted flag was already set, in which case nothing is written.
	CastBallot(ctx context.Context, voterID uuid.UUID, vote *domain.Vote) error
	CountAll(ctx context.Context) (int64, error)
}

type CastBallotInput struct {
	RegistrationNumber string
	Position           string
	CandidateRef       string
}

type BallotService interface {
	CastBallot(ctx context.Context, input CastBallotInput) (*domain.Vote, error)
}
