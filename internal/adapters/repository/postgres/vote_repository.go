package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/google/uuid"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// CastBallot performs the conditional mark-voted update and the vote insert
// in one transaction. The WHERE has_voted = FALSE clause is the guard: when
// two submissions race, exactly one update reports an affected row and the
// other rolls back with domain.ErrAlreadyVoted.
func (r *voteRepository) CastBallot(ctx context.Context, voterID uuid.UUID, vote *domain.Vote) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	markQuery := `
		UPDATE voters
		SET has_voted = TRUE, voted_at = NOW()
		WHERE id = $1 AND has_voted = FALSE
	`
	res, err := tx.ExecContext(ctx, markQuery, voterID)
	if err != nil {
		return fmt.Errorf("failed to mark voter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrAlreadyVoted
	}

	insertQuery := `
		INSERT INTO votes (id, candidate_ref, registration_number, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, insertQuery, vote.ID, vote.CandidateRef, vote.RegistrationNumber, vote.Position, vote.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *voteRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM votes`
	var count int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}
