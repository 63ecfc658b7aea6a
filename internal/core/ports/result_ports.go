package ports

import (
	"context"
	"io"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/google/uuid"
)

type ResultRepository interface {
	Tally(ctx context.Context) ([]*domain.ResultRow, error)
	Summary(ctx context.Context) (*domain.ElectionSummary, error)
	// Reset removes every vote, clears every voter's has_voted flag and
	// records the audit event, all in one transaction.
	Reset(ctx context.Context, event *domain.AuditEvent) error
}

type ResultService interface {
	Results(ctx context.Context) ([]*domain.ResultRow, error)
	WriteCSV(ctx context.Context, w io.Writer) error
	Summary(ctx context.Context) (*domain.ElectionSummary, error)
	Reset(ctx context.Context, actorID uuid.UUID) error
}
