package memory

import (
	"context"
	"sort"
	"time"

	"go-recruitment-tracker/internal/domain"
)

type activityStore struct {
	s *Store
}

func (s *Store) Activities() domain.ActivityRepository { return &activityStore{s: s} }

// Append inserts an audit record; the log is append-only by construction.
func (r *activityStore) Append(ctx context.Context, activity *domain.Activity) error {
	defer r.s.lock(ctx)()
	st := r.s.state

	activity.ID = st.nextActivityID
	st.nextActivityID++
	activity.CreatedAt = time.Now()
	st.activities[activity.ID] = *activity
	return nil
}

func (r *activityStore) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	defer r.s.lock(ctx)()
	activities := make([]domain.Activity, 0, len(r.s.state.activities))
	for _, a := range r.s.state.activities {
		activities = append(activities, a)
	}
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].CreatedAt.Equal(activities[j].CreatedAt) {
			return activities[i].ID > activities[j].ID
		}
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}
