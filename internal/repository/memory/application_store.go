package memory

import (
	"context"
	"sort"
	"time"

	"go-recruitment-tracker/internal/domain"
)

type applicationStore struct {
	s *Store
}

func (s *Store) Applications() domain.ApplicationRepository { return &applicationStore{s: s} }

func (r *applicationStore) Create(ctx context.Context, app *domain.Application) error {
	defer r.s.lock(ctx)()
	st := r.s.state

	app.ID = st.nextApplicationID
	st.nextApplicationID++
	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.StageApplied
	}
	st.applications[app.ID] = *app
	return nil
}

func (r *applicationStore) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	defer r.s.lock(ctx)()
	a, ok := r.s.state.applications[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *applicationStore) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return r.fetch(ctx, func(a domain.Application) bool { return a.JobID == jobID })
}

func (r *applicationStore) GetByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	return r.fetch(ctx, func(a domain.Application) bool { return a.UserID == userID })
}

func (r *applicationStore) GetByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	return r.fetch(ctx, func(a domain.Application) bool { return a.Status == status })
}

func (r *applicationStore) fetch(ctx context.Context, keep func(domain.Application) bool) ([]domain.Application, error) {
	defer r.s.lock(ctx)()
	var applications []domain.Application
	for _, a := range r.s.state.applications {
		if keep(a) {
			applications = append(applications, a)
		}
	}
	sort.Slice(applications, func(i, j int) bool {
		if applications[i].AppliedAt.Equal(applications[j].AppliedAt) {
			return applications[i].ID > applications[j].ID
		}
		return applications[i].AppliedAt.After(applications[j].AppliedAt)
	})
	return applications, nil
}

func (r *applicationStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	a, ok := st.applications[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	st.applications[id] = a
	return nil
}

func (r *applicationStore) CountAll(ctx context.Context) (int64, error) {
	defer r.s.lock(ctx)()
	return int64(len(r.s.state.applications)), nil
}

func (r *applicationStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	defer r.s.lock(ctx)()
	var count int64
	for _, a := range r.s.state.applications {
		if a.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *applicationStore) DeleteByUserID(ctx context.Context, userID int64) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	for id, a := range st.applications {
		if a.UserID == userID {
			delete(st.applications, id)
		}
	}
	return nil
}
