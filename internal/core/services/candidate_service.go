package services

import (
	"context"
	"regexp"
	"time"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/google/uuid"
)

// Ballot numbers use the two-digit voting machine format.
var ballotNumberPattern = regexp.MustCompile(`^\d{2}$`)

type candidateService struct {
	repo ports.CandidateRepository
}

func NewCandidateService(repo ports.CandidateRepository) ports.CandidateService {
	return &candidateService{
		repo: repo,
	}
}

func (s *candidateService) Add(ctx context.Context, input ports.AddCandidateInput) (*domain.Candidate, error) {
	if !ballotNumberPattern.MatchString(input.Number) {
		return nil, domain.ErrInvalidBallotNumber
	}
	if len(input.Name) < 3 {
		return nil, domain.ErrInvalidCandidateName
	}
	if !domain.ValidPosition(input.Position) {
		return nil, domain.ErrInvalidPosition
	}

	// Duplicate ballot numbers for the same position are accepted on
	// purpose; the ballot resolves candidates by id, not by number.
	candidate := &domain.Candidate{
		ID:        uuid.New(),
		Number:    input.Number,
		Name:      input.Name,
		Party:     input.Party,
		Position:  input.Position,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, candidate); err != nil {
		return nil, err
	}

	return candidate, nil
}

func (s *candidateService) Remove(ctx context.Context, id uuid.UUID) error {
	candidate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if candidate == nil {
		return domain.ErrCandidateNotFound
	}

	// No cascade: votes referencing this candidate stay behind and show up
	// in the tally as an unknown row.
	return s.repo.Delete(ctx, id)
}

func (s *candidateService) List(ctx context.Context) ([]*domain.Candidate, error) {
	return s.repo.GetAll(ctx)
}

func (s *candidateService) ListByPosition(ctx context.Context, position string) ([]*domain.Candidate, error) {
	if !domain.ValidPosition(position) {
		return nil, domain.ErrInvalidPosition
	}
	return s.repo.GetByPosition(ctx, position)
}
