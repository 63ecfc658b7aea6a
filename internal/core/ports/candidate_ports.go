package ports

import (
	"context"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/google/uuid"
)

type CandidateRepository interface {
	Save(ctx context.Context, candidate *domain.Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	GetAll(ctx context.Context) ([]*domain.Candidate, error)
	GetByPosition(ctx context.Context, position string) ([]*domain.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AddCandidateInput struct {
	Number   string
	Name     string
	Party    string
	Position string
}

type CandidateService interface {
	Add(ctx context.Context, input AddCandidateInput) (*domain.Candidate, error)
	Remove(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.Candidate, error)
	ListByPosition(ctx context.Context, position string) ([]*domain.Candidate, error)
}
