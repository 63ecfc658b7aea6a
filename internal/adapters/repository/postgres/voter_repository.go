package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type voterRepository struct {
	db *sql.DB
}

func NewVoterRepository(db *sql.DB) ports.VoterRepository {
	return &voterRepository{
		db: db,
	}
}

func (r *voterRepository) Create(ctx context.Context, voter *domain.Voter) error {
	query := `
		INSERT INTO voters (id, registration_number, name, group_label, has_voted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, voter.ID, voter.RegistrationNumber, voter.Name, voter.GroupLabel, voter.HasVoted, voter.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return domain.ErrDuplicateRegistration
		}
		return fmt.Errorf("failed to insert voter: %w", err)
	}
	return nil
}

func (r *voterRepository) GetByNumber(ctx context.Context, number string) (*domain.Voter, error) {
	query := `
		SELECT id, registration_number, name, group_label, has_voted, voted_at, created_at
		FROM voters
		WHERE registration_number = $1
	`
	voter := &domain.Voter{}
	err := r.db.QueryRowContext(ctx, query, number).Scan(
		&voter.ID,
		&voter.RegistrationNumber,
		&voter.Name,
		&voter.GroupLabel,
		&voter.HasVoted,
		&voter.VotedAt,
		&voter.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}
	return voter, nil
}

func (r *voterRepository) GetAll(ctx context.Context) ([]*domain.Voter, error) {
	query := `
		SELECT id, registration_number, name, group_label, has_voted, voted_at, created_at
		FROM voters
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all voters: %w", err)
	}
	defer rows.Close()

	var voters []*domain.Voter
	for rows.Next() {
		var voter domain.Voter
		if err := rows.Scan(&voter.ID, &voter.RegistrationNumber, &voter.Name, &voter.GroupLabel, &voter.HasVoted, &voter.VotedAt, &voter.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, &voter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating voters: %w", err)
	}
	return voters, nil
}
