package usecase

import (
	"context"
	"errors"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
)

type adminUsecase struct {
	userRepo        domain.UserRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
	applicationRepo domain.ApplicationRepository
	interviewRepo   domain.InterviewRepository
	activityRepo    domain.ActivityRepository
	tx              domain.TxManager
}

func NewAdminUsecase(
	userRepo domain.UserRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	applicationRepo domain.ApplicationRepository,
	interviewRepo domain.InterviewRepository,
	activityRepo domain.ActivityRepository,
	tx domain.TxManager,
) domain.AdminUsecase {
	return &adminUsecase{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		interviewRepo:   interviewRepo,
		activityRepo:    activityRepo,
		tx:              tx,
	}
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

// DeleteUser removes the user and everything it owns: applications it filed,
// interviews it scheduled as recruiter, jobs it posted, and its candidate
// profile. Activities are kept; the audit log outlives its actors.
func (u *adminUsecase) DeleteUser(ctx context.Context, actorID, userID int64) error {
	if actorID == userID {
		return apperror.BadRequest("Cannot delete your own account")
	}

	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := u.userRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("User not found")
			}
			return apperror.Internal(err)
		}

		if err := u.applicationRepo.DeleteByUserID(ctx, userID); err != nil {
			return apperror.Internal(err)
		}
		if err := u.interviewRepo.DeleteByRecruiterID(ctx, userID); err != nil {
			return apperror.Internal(err)
		}
		if err := u.jobRepo.DeleteByUserID(ctx, userID); err != nil {
			return apperror.Internal(err)
		}
		if err := u.candidateRepo.DeleteByUserID(ctx, userID); err != nil {
			return apperror.Internal(err)
		}
		if err := u.userRepo.Delete(ctx, userID); err != nil {
			return apperror.Internal(err)
		}

		return appendActivity(ctx, u.activityRepo, actorID, domain.UserDeletedDetails{
			UserID:   user.ID,
			Username: user.Username,
		})
	})
}
