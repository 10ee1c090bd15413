package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/validation"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	activityRepo domain.ActivityRepository
	tx           domain.TxManager
	validate     *validator.Validate
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	activityRepo domain.ActivityRepository,
	tx domain.TxManager,
	validate *validator.Validate,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		activityRepo: activityRepo,
		tx:           tx,
		validate:     validate,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, actorID int64, job *domain.Job) error {
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	if err := u.validate.Struct(job); err != nil {
		return apperror.Validation("Validation failed", validation.Translate(err))
	}
	job.UserID = actorID

	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.jobRepo.Create(ctx, job); err != nil {
			return apperror.Internal(err)
		}
		return appendActivity(ctx, u.activityRepo, actorID, domain.JobCreatedDetails{
			JobID:    job.ID,
			JobTitle: job.Title,
		})
	})
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actorID, id int64, patch domain.JobPatch) (*domain.Job, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.Translate(err))
	}

	var out *domain.Job
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		job, err := u.jobRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Job not found")
			}
			return apperror.Internal(err)
		}

		applyJobPatch(job, patch)
		if err := u.validate.Struct(job); err != nil {
			return apperror.Validation("Validation failed", validation.Translate(err))
		}
		if err := u.jobRepo.Update(ctx, job); err != nil {
			return apperror.Internal(err)
		}

		if err := appendActivity(ctx, u.activityRepo, actorID, domain.JobUpdatedDetails{
			JobID:    job.ID,
			JobTitle: job.Title,
		}); err != nil {
			return err
		}

		out = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func applyJobPatch(job *domain.Job, patch domain.JobPatch) {
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.Salary != nil {
		job.Salary = patch.Salary
	}
	if patch.Requirements != nil {
		job.Requirements = patch.Requirements
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) RecentJobs(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit <= 0 {
		limit = 5
	}
	jobs, err := u.jobRepo.FetchRecent(ctx, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
