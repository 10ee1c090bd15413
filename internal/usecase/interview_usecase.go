package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/validation"
)

type interviewUsecase struct {
	interviewRepo   domain.InterviewRepository
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
	activityRepo    domain.ActivityRepository
	tx              domain.TxManager
	validate        *validator.Validate
}

func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
	activityRepo domain.ActivityRepository,
	tx domain.TxManager,
	validate *validator.Validate,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo:   interviewRepo,
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		activityRepo:    activityRepo,
		tx:              tx,
		validate:        validate,
	}
}

// ScheduleInterview creates an interview against an existing application.
// The acting recruiter becomes the interview's owner.
func (u *interviewUsecase) ScheduleInterview(ctx context.Context, actorID int64, interview *domain.Interview) error {
	interview.RecruiterID = actorID
	if interview.Status == "" {
		interview.Status = domain.InterviewStatusScheduled
	}
	if err := u.validate.Struct(interview); err != nil {
		return apperror.Validation("Validation failed", validation.Translate(err))
	}

	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		app, err := u.applicationRepo.GetByID(ctx, interview.ApplicationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Application not found")
			}
			return apperror.Internal(err)
		}

		if err := u.interviewRepo.Create(ctx, interview); err != nil {
			return apperror.Internal(err)
		}

		jobTitle, userName := u.resolveNames(ctx, app.JobID, app.UserID)
		return appendActivity(ctx, u.activityRepo, actorID, domain.InterviewScheduledDetails{
			InterviewID:   interview.ID,
			ApplicationID: app.ID,
			UserID:        app.UserID,
			UserName:      userName,
			JobID:         app.JobID,
			JobTitle:      jobTitle,
			ScheduledAt:   interview.ScheduledAt,
		})
	})
}

func (u *interviewUsecase) UpdateInterview(ctx context.Context, actorID, id int64, patch domain.InterviewPatch) (*domain.Interview, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.Translate(err))
	}

	var out *domain.Interview
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		interview, err := u.interviewRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Interview not found")
			}
			return apperror.Internal(err)
		}

		oldStatus := interview.Status
		applyInterviewPatch(interview, patch)
		if err := u.interviewRepo.Update(ctx, interview); err != nil {
			return apperror.Internal(err)
		}

		if interview.Status != oldStatus {
			userName := unknownUserName
			if app, err := u.applicationRepo.GetByID(ctx, interview.ApplicationID); err == nil {
				if user, err := u.userRepo.GetByID(ctx, app.UserID); err == nil {
					userName = user.FullName
				}
			}
			if err := appendActivity(ctx, u.activityRepo, actorID, domain.InterviewStatusChangedDetails{
				InterviewID: interview.ID,
				UserID:      actorID,
				UserName:    userName,
				OldStatus:   oldStatus,
				NewStatus:   interview.Status,
			}); err != nil {
				return err
			}
		}

		out = interview
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func applyInterviewPatch(interview *domain.Interview, patch domain.InterviewPatch) {
	if patch.ScheduledAt != nil {
		interview.ScheduledAt = *patch.ScheduledAt
	}
	if patch.Duration != nil {
		interview.Duration = *patch.Duration
	}
	if patch.Location != nil {
		interview.Location = patch.Location
	}
	if patch.Notes != nil {
		interview.Notes = patch.Notes
	}
	if patch.Status != nil {
		interview.Status = *patch.Status
	}
}

func (u *interviewUsecase) ListByApplication(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	interviews, err := u.interviewRepo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

func (u *interviewUsecase) UpcomingInterviews(ctx context.Context, limit int) ([]domain.Interview, error) {
	if limit <= 0 {
		limit = 10
	}
	interviews, err := u.interviewRepo.FetchUpcoming(ctx, time.Now(), limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

func (u *interviewUsecase) resolveNames(ctx context.Context, jobID, userID int64) (jobTitle, userName string) {
	jobTitle = unknownJobTitle
	if job, err := u.jobRepo.GetByID(ctx, jobID); err == nil {
		jobTitle = job.Title
	}
	userName = unknownUserName
	if user, err := u.userRepo.GetByID(ctx, userID); err == nil {
		userName = user.FullName
	}
	return jobTitle, userName
}
