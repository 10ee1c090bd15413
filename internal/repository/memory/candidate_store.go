package memory

import (
	"context"
	"sort"
	"time"

	"go-recruitment-tracker/internal/domain"
)

type candidateStore struct {
	s *Store
}

func (s *Store) Candidates() domain.CandidateRepository { return &candidateStore{s: s} }

func (r *candidateStore) Create(ctx context.Context, candidate *domain.Candidate) error {
	defer r.s.lock(ctx)()
	st := r.s.state

	for _, c := range st.candidates {
		if c.Email == candidate.Email {
			return domain.ErrDuplicate
		}
	}

	candidate.ID = st.nextCandidateID
	st.nextCandidateID++
	candidate.CreatedAt = time.Now()
	if candidate.Stage == "" {
		candidate.Stage = domain.StageApplied
	}
	st.candidates[candidate.ID] = *candidate
	return nil
}

func (r *candidateStore) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	defer r.s.lock(ctx)()
	c, ok := r.s.state.candidates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *candidateStore) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	defer r.s.lock(ctx)()
	for _, c := range r.s.state.candidates {
		if c.UserID != nil && *c.UserID == userID {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *candidateStore) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	return r.fetch(ctx, func(domain.Candidate) bool { return true })
}

func (r *candidateStore) FetchByStage(ctx context.Context, stage string) ([]domain.Candidate, error) {
	return r.fetch(ctx, func(c domain.Candidate) bool { return c.Stage == stage })
}

func (r *candidateStore) fetch(ctx context.Context, keep func(domain.Candidate) bool) ([]domain.Candidate, error) {
	defer r.s.lock(ctx)()
	var candidates []domain.Candidate
	for _, c := range r.s.state.candidates {
		if keep(c) {
			candidates = append(candidates, c)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].CreatedAt.Equal(candidates[j].CreatedAt) {
			return candidates[i].ID > candidates[j].ID
		}
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})
	return candidates, nil
}

func (r *candidateStore) Update(ctx context.Context, candidate *domain.Candidate) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	existing, ok := st.candidates[candidate.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// Stage changes go through UpdateStage so the transition is recorded.
	candidate.Stage = existing.Stage
	candidate.CreatedAt = existing.CreatedAt
	st.candidates[candidate.ID] = *candidate
	return nil
}

func (r *candidateStore) UpdateStage(ctx context.Context, id int64, stage string) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	c, ok := st.candidates[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Stage = stage
	st.candidates[id] = c
	return nil
}

func (r *candidateStore) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	defer r.s.lock(ctx)()
	var count int64
	for _, c := range r.s.state.candidates {
		if !c.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *candidateStore) DeleteByUserID(ctx context.Context, userID int64) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	for id, c := range st.candidates {
		if c.UserID != nil && *c.UserID == userID {
			delete(st.candidates, id)
		}
	}
	return nil
}
