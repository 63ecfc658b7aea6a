package services

import (
	"context"
	"sync"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/google/uuid"
)

type fakeVoterRepo struct {
	mu     sync.Mutex
	voters map[string]*domain.Voter
}

func newFakeVoterRepo() *fakeVoterRepo {
	return &fakeVoterRepo{voters: make(map[string]*domain.Voter)}
}

func (f *fakeVoterRepo) Create(_ context.Context, voter *domain.Voter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.voters[voter.RegistrationNumber]; ok {
		return domain.ErrDuplicateRegistration
	}
	copied := *voter
	f.voters[voter.RegistrationNumber] = &copied
	return nil
}

func (f *fakeVoterRepo) GetByNumber(_ context.Context, number string) (*domain.Voter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	voter, ok := f.voters[number]
	if !ok {
		return nil, nil
	}
	copied := *voter
	return &copied, nil
}

func (f *fakeVoterRepo) GetAll(_ context.Context) ([]*domain.Voter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*domain.Voter
	for _, voter := range f.voters {
		copied := *voter
		all = append(all, &copied)
	}
	return all, nil
}

type fakeCandidateRepo struct {
	candidates map[uuid.UUID]*domain.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[uuid.UUID]*domain.Candidate)}
}

func (f *fakeCandidateRepo) Save(_ context.Context, candidate *domain.Candidate) error {
	copied := *candidate
	f.candidates[candidate.ID] = &copied
	return nil
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Candidate, error) {
	candidate, ok := f.candidates[id]
	if !ok {
		return nil, nil
	}
	copied := *candidate
	return &copied, nil
}

func (f *fakeCandidateRepo) GetAll(_ context.Context) ([]*domain.Candidate, error) {
	var all []*domain.Candidate
	for _, candidate := range f.candidates {
		copied := *candidate
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeCandidateRepo) GetByPosition(_ context.Context, position string) ([]*domain.Candidate, error) {
	var matched []*domain.Candidate
	for _, candidate := range f.candidates {
		if candidate.Position == position {
			copied := *candidate
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (f *fakeCandidateRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.candidates, id)
	return nil
}

// fakeVoteRepo mimics the conditional mark-voted guard of the real
// repository, including its behavior under concurrent casts.
type fakeVoteRepo struct {
	mu    sync.Mutex
	voted map[uuid.UUID]bool
	votes []*domain.Vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{voted: make(map[uuid.UUID]bool)}
}

func (f *fakeVoteRepo) CastBallot(_ context.Context, voterID uuid.UUID, vote *domain.Vote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.voted[voterID] {
		return domain.ErrAlreadyVoted
	}
	f.voted[voterID] = true
	copied := *vote
	f.votes = append(f.votes, &copied)
	return nil
}

func (f *fakeVoteRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.votes)), nil
}

type fakeResultRepo struct {
	rows       []*domain.ResultRow
	summary    *domain.ElectionSummary
	resetEvent *domain.AuditEvent
}

func (f *fakeResultRepo) Tally(_ context.Context) ([]*domain.ResultRow, error) {
	return f.rows, nil
}

func (f *fakeResultRepo) Summary(_ context.Context) (*domain.ElectionSummary, error) {
	return f.summary, nil
}

func (f *fakeResultRepo) Reset(_ context.Context, event *domain.AuditEvent) error {
	f.resetEvent = event
	return nil
}
