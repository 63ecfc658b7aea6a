package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/google/uuid"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) ports.CandidateRepository {
	return &candidateRepository{
		db: db,
	}
}

func (r *candidateRepository) Save(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (id, number, name, party, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, candidate.ID, candidate.Number, candidate.Name, candidate.Party, candidate.Position, candidate.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	query := `
		SELECT id, number, name, party, position, created_at
		FROM candidates
		WHERE id = $1
	`
	candidate := &domain.Candidate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&candidate.ID,
		&candidate.Number,
		&candidate.Name,
		&candidate.Party,
		&candidate.Position,
		&candidate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

func (r *candidateRepository) GetAll(ctx context.Context) ([]*domain.Candidate, error) {
	query := `
		SELECT id, number, name, party, position, created_at
		FROM candidates
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all candidates: %w", err)
	}
	defer rows.Close()

	return r.scanCandidates(rows)
}

func (r *candidateRepository) GetByPosition(ctx context.Context, position string) ([]*domain.Candidate, error) {
	query := `
		SELECT id, number, name, party, position, created_at
		FROM candidates
		WHERE position = $1
		ORDER BY number
	`
	rows, err := r.db.QueryContext(ctx, query, position)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates by position: %w", err)
	}
	defer rows.Close()

	return r.scanCandidates(rows)
}

func (r *candidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM candidates WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) scanCandidates(rows *sql.Rows) ([]*domain.Candidate, error) {
	var candidates []*domain.Candidate
	for rows.Next() {
		var candidate domain.Candidate
		if err := rows.Scan(&candidate.ID, &candidate.Number, &candidate.Name, &candidate.Party, &candidate.Position, &candidate.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, &candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}
