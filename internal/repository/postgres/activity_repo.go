package postgres

import (
	"context"
	"time"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type activityRepo struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) domain.ActivityRepository {
	return &activityRepo{db: db}
}

// Append inserts an audit record. There are no update or delete methods:
// the log is append-only.
func (r *activityRepo) Append(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (user_id, type, details, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	activity.CreatedAt = time.Now()
	return querier(ctx, r.db).QueryRow(ctx, query,
		activity.UserID,
		activity.Type,
		activity.Details,
		activity.CreatedAt,
	).Scan(&activity.ID)
}

func (r *activityRepo) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	query := `
		SELECT id, user_id, type, details, created_at
		FROM activities
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := querier(ctx, r.db).Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Details, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
