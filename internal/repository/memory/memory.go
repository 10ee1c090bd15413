// Package memory provides a map-backed implementation of the repository
// interfaces. It mirrors the postgres implementation closely enough to back
// the full API and is the storage used by the test suite.
package memory

import (
	"context"
	"sync"

	"go-recruitment-tracker/internal/domain"
)

type txKey struct{}

type state struct {
	users        map[int64]domain.User
	jobs         map[int64]domain.Job
	candidates   map[int64]domain.Candidate
	applications map[int64]domain.Application
	interviews   map[int64]domain.Interview
	activities   map[int64]domain.Activity

	nextUserID        int64
	nextJobID         int64
	nextCandidateID   int64
	nextApplicationID int64
	nextInterviewID   int64
	nextActivityID    int64
}

func newState() *state {
	return &state{
		users:             make(map[int64]domain.User),
		jobs:              make(map[int64]domain.Job),
		candidates:        make(map[int64]domain.Candidate),
		applications:      make(map[int64]domain.Application),
		interviews:        make(map[int64]domain.Interview),
		activities:        make(map[int64]domain.Activity),
		nextUserID:        1,
		nextJobID:         1,
		nextCandidateID:   1,
		nextApplicationID: 1,
		nextInterviewID:   1,
		nextActivityID:    1,
	}
}

func (s *state) clone() *state {
	c := &state{
		users:             make(map[int64]domain.User, len(s.users)),
		jobs:              make(map[int64]domain.Job, len(s.jobs)),
		candidates:        make(map[int64]domain.Candidate, len(s.candidates)),
		applications:      make(map[int64]domain.Application, len(s.applications)),
		interviews:        make(map[int64]domain.Interview, len(s.interviews)),
		activities:        make(map[int64]domain.Activity, len(s.activities)),
		nextUserID:        s.nextUserID,
		nextJobID:         s.nextJobID,
		nextCandidateID:   s.nextCandidateID,
		nextApplicationID: s.nextApplicationID,
		nextInterviewID:   s.nextInterviewID,
		nextActivityID:    s.nextActivityID,
	}
	for id, u := range s.users {
		c.users[id] = u
	}
	for id, j := range s.jobs {
		c.jobs[id] = j
	}
	for id, cd := range s.candidates {
		cd.Skills = append([]string(nil), cd.Skills...)
		c.candidates[id] = cd
	}
	for id, a := range s.applications {
		c.applications[id] = a
	}
	for id, iv := range s.interviews {
		c.interviews[id] = iv
	}
	for id, a := range s.activities {
		a.Details = append([]byte(nil), a.Details...)
		c.activities[id] = a
	}
	return c
}

// Store implements every repository interface plus domain.TxManager.
type Store struct {
	mu    sync.Mutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// lock acquires the store mutex unless the context already runs inside
// WithinTx, which holds it for the whole transaction.
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// WithinTx runs fn under the store lock against the live state. On error the
// pre-transaction snapshot is restored, so partial writes never survive.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}
