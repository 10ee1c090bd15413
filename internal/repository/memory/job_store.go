package memory

import (
	"context"
	"sort"
	"time"

	"go-recruitment-tracker/internal/domain"
)

type jobStore struct {
	s *Store
}

func (s *Store) Jobs() domain.JobRepository { return &jobStore{s: s} }

func (r *jobStore) Create(ctx context.Context, job *domain.Job) error {
	defer r.s.lock(ctx)()
	st := r.s.state

	job.ID = st.nextJobID
	st.nextJobID++
	job.CreatedAt = time.Now()
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	st.jobs[job.ID] = *job
	return nil
}

func (r *jobStore) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	defer r.s.lock(ctx)()
	j, ok := r.s.state.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &j, nil
}

func (r *jobStore) Fetch(ctx context.Context) ([]domain.Job, error) {
	defer r.s.lock(ctx)()
	return r.sortedJobs(), nil
}

func (r *jobStore) FetchRecent(ctx context.Context, limit int) ([]domain.Job, error) {
	defer r.s.lock(ctx)()
	jobs := r.sortedJobs()
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

// sortedJobs returns all jobs newest-first. Callers must hold the lock.
func (r *jobStore) sortedJobs() []domain.Job {
	jobs := make([]domain.Job, 0, len(r.s.state.jobs))
	for _, j := range r.s.state.jobs {
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID > jobs[j].ID
		}
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs
}

func (r *jobStore) Update(ctx context.Context, job *domain.Job) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	existing, ok := st.jobs[job.ID]
	if !ok {
		return domain.ErrNotFound
	}
	job.UserID = existing.UserID
	job.CreatedAt = existing.CreatedAt
	st.jobs[job.ID] = *job
	return nil
}

func (r *jobStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	defer r.s.lock(ctx)()
	var count int64
	for _, j := range r.s.state.jobs {
		if j.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *jobStore) DeleteByUserID(ctx context.Context, userID int64) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	for id, j := range st.jobs {
		if j.UserID == userID {
			delete(st.jobs, id)
		}
	}
	return nil
}
