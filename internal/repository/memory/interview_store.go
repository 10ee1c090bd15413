package memory

import (
	"context"
	"sort"
	"time"

	"go-recruitment-tracker/internal/domain"
)

type interviewStore struct {
	s *Store
}

func (s *Store) Interviews() domain.InterviewRepository { return &interviewStore{s: s} }

func (r *interviewStore) Create(ctx context.Context, interview *domain.Interview) error {
	defer r.s.lock(ctx)()
	st := r.s.state

	interview.ID = st.nextInterviewID
	st.nextInterviewID++
	if interview.Status == "" {
		interview.Status = domain.InterviewStatusScheduled
	}
	st.interviews[interview.ID] = *interview
	return nil
}

func (r *interviewStore) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	defer r.s.lock(ctx)()
	iv, ok := r.s.state.interviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &iv, nil
}

func (r *interviewStore) GetByApplicationID(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	defer r.s.lock(ctx)()
	var interviews []domain.Interview
	for _, iv := range r.s.state.interviews {
		if iv.ApplicationID == applicationID {
			interviews = append(interviews, iv)
		}
	}
	sortBySchedule(interviews)
	return interviews, nil
}

func (r *interviewStore) FetchUpcoming(ctx context.Context, after time.Time, limit int) ([]domain.Interview, error) {
	defer r.s.lock(ctx)()
	var interviews []domain.Interview
	for _, iv := range r.s.state.interviews {
		if iv.ScheduledAt.After(after) && iv.Status == domain.InterviewStatusScheduled {
			interviews = append(interviews, iv)
		}
	}
	sortBySchedule(interviews)
	if len(interviews) > limit {
		interviews = interviews[:limit]
	}
	return interviews, nil
}

func sortBySchedule(interviews []domain.Interview) {
	sort.Slice(interviews, func(i, j int) bool {
		return interviews[i].ScheduledAt.Before(interviews[j].ScheduledAt)
	})
}

func (r *interviewStore) Update(ctx context.Context, interview *domain.Interview) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	existing, ok := st.interviews[interview.ID]
	if !ok {
		return domain.ErrNotFound
	}
	interview.ApplicationID = existing.ApplicationID
	interview.RecruiterID = existing.RecruiterID
	st.interviews[interview.ID] = *interview
	return nil
}

func (r *interviewStore) CountScheduledAfter(ctx context.Context, after time.Time) (int64, error) {
	defer r.s.lock(ctx)()
	var count int64
	for _, iv := range r.s.state.interviews {
		if iv.ScheduledAt.After(after) && iv.Status == domain.InterviewStatusScheduled {
			count++
		}
	}
	return count, nil
}

func (r *interviewStore) DeleteByRecruiterID(ctx context.Context, recruiterID int64) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	for id, iv := range st.interviews {
		if iv.RecruiterID == recruiterID {
			delete(st.interviews, id)
		}
	}
	return nil
}
