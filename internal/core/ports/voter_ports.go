package ports

import (
	"context"

	"github.com/classvote/urna/internal/core/domain"
)

type VoterRepository interface {
	Create(ctx context.Context, voter *domain.Voter) error
	GetByNumber(ctx context.Context, number string) (*domain.Voter, error)
	GetAll(ctx context.Context) ([]*domain.Voter, error)
}

type RegisterVoterInput struct {
	RegistrationNumber string
	Name               string
	GroupLabel         string
}

type VoterService interface {
	Register(ctx context.Context, input RegisterVoterInput) (*domain.Voter, error)
	FindByNumber(ctx context.Context, number string) (*domain.Voter, error)
	ListVoters(ctx context.Context) ([]*domain.Voter, error)
}
