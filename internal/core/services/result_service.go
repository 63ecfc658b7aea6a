package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/google/uuid"
)

type resultService struct {
	repo ports.ResultRepository
}

func NewResultService(repo ports.ResultRepository) ports.ResultService {
	return &resultService{
		repo: repo,
	}
}

func (s *resultService) Results(ctx context.Context) ([]*domain.ResultRow, error) {
	return s.repo.Tally(ctx)
}

func (s *resultService) Summary(ctx context.Context) (*domain.ElectionSummary, error) {
	return s.repo.Summary(ctx)
}

func (s *resultService) WriteCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.repo.Tally(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch tally: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Cargo", "Número", "Nome", "Partido", "Votos", "%"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Position,
			row.Number,
			row.Name,
			row.Party,
			fmt.Sprintf("%d", row.VoteCount),
			fmt.Sprintf("%.2f", row.Percentage),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *resultService) Reset(ctx context.Context, actorID uuid.UUID) error {
	event := &domain.AuditEvent{
		ID:        uuid.New(),
		ActorID:   actorID,
		Action:    domain.ActionElectionReset,
		Detail:    "all votes removed, voter flags cleared",
		CreatedAt: time.Now(),
	}

	return s.repo.Reset(ctx, event)
}
