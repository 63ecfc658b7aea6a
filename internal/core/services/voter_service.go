package services

import (
	"context"
	"time"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/google/uuid"
)

type voterService struct {
	repo ports.VoterRepository
}

func NewVoterService(repo ports.VoterRepository) ports.VoterService {
	return &voterService{
		repo: repo,
	}
}

func (s *voterService) Register(ctx context.Context, input ports.RegisterVoterInput) (*domain.Voter, error) {
	if input.RegistrationNumber == "" {
		return nil, domain.ErrMissingRegistrationNumber
	}
	if input.Name == "" {
		return nil, domain.ErrMissingVoterName
	}

	existing, err := s.repo.GetByNumber(ctx, input.RegistrationNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateRegistration
	}

	voter := &domain.Voter{
		ID:                 uuid.New(),
		RegistrationNumber: input.RegistrationNumber,
		Name:               input.Name,
		GroupLabel:         input.GroupLabel,
		HasVoted:           false,
		CreatedAt:          time.Now(),
	}

	// The unique index on registration_number closes the window between the
	// lookup above and this insert: a concurrent duplicate still fails.
	if err := s.repo.Create(ctx, voter); err != nil {
		return nil, err
	}

	return voter, nil
}

func (s *voterService) FindByNumber(ctx context.Context, number string) (*domain.Voter, error) {
	voter, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, domain.ErrVoterNotRegistered
	}
	return voter, nil
}

func (s *voterService) ListVoters(ctx context.Context) ([]*domain.Voter, error) {
	return s.repo.GetAll(ctx)
}
