package usecase

import (
	"context"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 100
)

type activityUsecase struct {
	activityRepo domain.ActivityRepository
}

func NewActivityUsecase(activityRepo domain.ActivityRepository) domain.ActivityUsecase {
	return &activityUsecase{activityRepo: activityRepo}
}

func (u *activityUsecase) RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	activities, err := u.activityRepo.Recent(ctx, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return activities, nil
}
