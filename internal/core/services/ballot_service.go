package services

import (
	"context"
	"time"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/google/uuid"
)

type ballotService struct {
	voterRepo     ports.VoterRepository
	candidateRepo ports.CandidateRepository
	voteRepo      ports.VoteRepository
}

func NewBallotService(voterRepo ports.VoterRepository, candidateRepo ports.CandidateRepository, voteRepo ports.VoteRepository) ports.BallotService {
	return &ballotService{
		voterRepo:     voterRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
	}
}

// CastBallot validates the submission and records it. The already-voted
// check is not taken on trust from the read below: the decisive check is
// the conditional update inside VoteRepository.CastBallot, so two
// concurrent submissions from the same voter cannot both land.
func (s *ballotService) CastBallot(ctx context.Context, input ports.CastBallotInput) (*domain.Vote, error) {
	if !domain.ValidPosition(input.Position) {
		return nil, domain.ErrInvalidPosition
	}

	voter, err := s.voterRepo.GetByNumber(ctx, input.RegistrationNumber)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, domain.ErrVoterNotRegistered
	}
	if voter.HasVoted {
		return nil, domain.ErrAlreadyVoted
	}

	if !domain.SentinelRef(input.CandidateRef) {
		candidateID, err := uuid.Parse(input.CandidateRef)
		if err != nil {
			return nil, domain.ErrCandidateNotFound
		}
		candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
		if err != nil {
			return nil, err
		}
		if candidate == nil || candidate.Position != input.Position {
			return nil, domain.ErrCandidateNotFound
		}
	}

	vote := &domain.Vote{
		ID:                 uuid.New(),
		CandidateRef:       input.CandidateRef,
		RegistrationNumber: voter.RegistrationNumber,
		Position:           input.Position,
		CreatedAt:          time.Now(),
	}

	if err := s.voteRepo.CastBallot(ctx, voter.ID, vote); err != nil {
		return nil, err
	}

	return vote, nil
}
