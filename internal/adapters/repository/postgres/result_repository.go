package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
)

type resultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ports.ResultRepository {
	return &resultRepository{
		db: db,
	}
}

// Tally reads the candidate list and the per-reference vote counts from the
// same connection and assembles the rows in memory. Candidates with no votes
// still get a row; the blank and null sentinel rows are always present;
// references left behind by deleted candidates become "unknown" rows.
func (r *resultRepository) Tally(ctx context.Context) ([]*domain.ResultRow, error) {
	countQuery := `
		SELECT candidate_ref, COUNT(*)
		FROM votes
		GROUP BY candidate_ref
	`
	rows, err := r.db.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	var total int64
	for rows.Next() {
		var ref string
		var count int64
		if err := rows.Scan(&ref, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[ref] = count
		total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vote counts: %w", err)
	}

	candidateQuery := `
		SELECT id, number, name, party, position
		FROM candidates
	`
	candidateRows, err := r.db.QueryContext(ctx, candidateQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	defer candidateRows.Close()

	var result []*domain.ResultRow
	for candidateRows.Next() {
		row := &domain.ResultRow{}
		if err := candidateRows.Scan(&row.Ref, &row.Number, &row.Name, &row.Party, &row.Position); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		row.VoteCount = counts[row.Ref]
		delete(counts, row.Ref)
		result = append(result, row)
	}
	if err := candidateRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}

	result = append(result,
		&domain.ResultRow{Ref: domain.BlankVote, Name: "Voto em Branco", VoteCount: counts[domain.BlankVote]},
		&domain.ResultRow{Ref: domain.NullVote, Name: "Voto Nulo", VoteCount: counts[domain.NullVote]},
	)
	delete(counts, domain.BlankVote)
	delete(counts, domain.NullVote)

	// Whatever is left points at candidates deleted after voting started.
	orphans := make([]string, 0, len(counts))
	for ref := range counts {
		orphans = append(orphans, ref)
	}
	sort.Strings(orphans)
	for _, ref := range orphans {
		result = append(result, &domain.ResultRow{
			Ref:       ref,
			Name:      "Candidato removido",
			VoteCount: counts[ref],
		})
	}

	if total > 0 {
		for _, row := range result {
			row.Percentage = float64(row.VoteCount) / float64(total) * 100
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].VoteCount > result[j].VoteCount
	})

	return result, nil
}

func (r *resultRepository) Summary(ctx context.Context) (*domain.ElectionSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM voters),
			(SELECT COUNT(*) FROM voters WHERE has_voted),
			(SELECT COUNT(*) FROM candidates),
			(SELECT COUNT(*) FROM votes)
	`
	summary := &domain.ElectionSummary{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&summary.Voters,
		&summary.VotersVoted,
		&summary.Candidates,
		&summary.Votes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return summary, nil
}

func (r *resultRepository) Reset(ctx context.Context, event *domain.AuditEvent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM votes`); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE voters SET has_voted = FALSE, voted_at = NULL`); err != nil {
		return fmt.Errorf("failed to reset voter flags: %w", err)
	}

	auditQuery := `
		INSERT INTO audit_events (id, actor_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, auditQuery, event.ID, event.ActorID, event.Action, event.Detail, event.CreatedAt); err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
