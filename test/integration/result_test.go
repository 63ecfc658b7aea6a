package integration

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsSumMatchesVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	adminToken := app.createUserAndToken(t, domain.RoleAdmin)
	candidate := app.addCandidate(t, adminToken, "13", "Ana", "Presidente")

	refs := []string{candidate.ID.String(), candidate.ID.String(), domain.BlankVote, domain.NullVote}
	for i, ref := range refs {
		number := string(rune('A'+i)) + "001"
		app.registerVoter(t, adminToken, number, "Voter "+number)
		resp := app.doJSON(t, http.MethodPost, "/api/ballots", "", map[string]string{
			"registration_number": number,
			"position":            "Presidente",
			"candidate_ref":       ref,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	results := app.fetchResults(t)
	var total int64
	var totalPct float64
	for _, row := range results {
		total += row.VoteCount
		totalPct += row.Percentage
	}

	var voteCount int64
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM votes").Scan(&voteCount))
	assert.Equal(t, voteCount, total)
	assert.InDelta(t, 100.0, totalPct, 0.001)

	assert.Equal(t, int64(2), results[candidate.ID.String()].VoteCount)
	assert.Equal(t, int64(1), results[domain.BlankVote].VoteCount)
	assert.Equal(t, int64(1), results[domain.NullVote].VoteCount)
}

func TestExportResultsCSV(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	adminToken := app.createUserAndToken(t, domain.RoleAdmin)
	app.addCandidate(t, adminToken, "13", "Ana", "Presidente")

	resp := app.doJSON(t, http.MethodGet, "/api/results/export", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	mesarioToken := app.createUserAndToken(t, domain.RoleMesario)
	resp = app.doJSON(t, http.MethodGet, "/api/results/export", mesarioToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Equal(t, "Cargo,Número,Nome,Partido,Votos,%", lines[0])
	// One candidate plus the blank and null rows.
	assert.Len(t, lines, 4)
}

func TestSummaryCounters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	adminToken := app.createUserAndToken(t, domain.RoleAdmin)
	app.registerVoter(t, adminToken, "M001", "Maria")
	app.registerVoter(t, adminToken, "M002", "João")
	app.addCandidate(t, adminToken, "13", "Ana", "Presidente")

	resp := app.doJSON(t, http.MethodPost, "/api/ballots", "", map[string]string{
		"registration_number": "M001",
		"position":            "Presidente",
		"candidate_ref":       domain.BlankVote,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.doJSON(t, http.MethodGet, "/api/results/summary", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decodeBody[domain.ElectionSummary](t, resp)

	assert.Equal(t, int64(2), summary.Voters)
	assert.Equal(t, int64(1), summary.VotersVoted)
	assert.Equal(t, int64(1), summary.Candidates)
	assert.Equal(t, int64(1), summary.Votes)
}

func TestResetElection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	adminToken := app.createUserAndToken(t, domain.RoleAdmin)
	app.registerVoter(t, adminToken, "M001", "Maria")

	resp := app.doJSON(t, http.MethodPost, "/api/ballots", "", map[string]string{
		"registration_number": "M001",
		"position":            "Presidente",
		"candidate_ref":       domain.BlankVote,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Not reachable without the admin role.
	mesarioToken := app.createUserAndToken(t, domain.RoleMesario)
	resp = app.doJSON(t, http.MethodPost, "/api/election/reset", mesarioToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = app.doJSON(t, http.MethodPost, "/api/election/reset", adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	var voteCount int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM votes").Scan(&voteCount))
	assert.Equal(t, 0, voteCount)

	var hasVoted bool
	require.NoError(t, app.DB.QueryRow("SELECT has_voted FROM voters WHERE registration_number = 'M001'").Scan(&hasVoted))
	assert.False(t, hasVoted)

	var auditCount int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM audit_events WHERE action = 'election_reset'").Scan(&auditCount))
	assert.Equal(t, 1, auditCount)

	// The voter can vote again after the reset.
	resp = app.doJSON(t, http.MethodPost, "/api/ballots", "", map[string]string{
		"registration_number": "M001",
		"position":            "Presidente",
		"candidate_ref":       domain.NullVote,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}
