package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
)

// Fallbacks used in activity payloads when a referenced entity has been
// deleted between the write and the lookup.
const (
	unknownJobTitle = "Unknown Job"
	unknownUserName = "Unknown User"
)

type pipelineUsecase struct {
	candidateRepo   domain.CandidateRepository
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
	activityRepo    domain.ActivityRepository
	tx              domain.TxManager
}

// NewPipelineUsecase creates the transition engine. All stage/status
// mutations in the system flow through it so that every transition leaves
// an audit record, written in the same transaction as the state change.
func NewPipelineUsecase(
	candidateRepo domain.CandidateRepository,
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
	activityRepo domain.ActivityRepository,
	tx domain.TxManager,
) domain.PipelineUsecase {
	return &pipelineUsecase{
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		activityRepo:    activityRepo,
		tx:              tx,
	}
}

// TransitionCandidateStage overwrites the candidate's stage. Any stage may
// move to any other stage; there is no legality matrix. A same-stage
// transition performs the write but records no activity.
func (u *pipelineUsecase) TransitionCandidateStage(ctx context.Context, actorID, candidateID int64, newStage string) (*domain.Candidate, error) {
	if !domain.IsValidStage(newStage) {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid stage %q", newStage))
	}

	var out *domain.Candidate
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Candidate not found")
			}
			return apperror.Internal(err)
		}

		oldStage := candidate.Stage
		if err := u.candidateRepo.UpdateStage(ctx, candidateID, newStage); err != nil {
			return apperror.Internal(err)
		}
		candidate.Stage = newStage

		if oldStage != newStage {
			if err := appendActivity(ctx, u.activityRepo, actorID, domain.CandidateStageChangedDetails{
				CandidateID:   candidate.ID,
				CandidateName: candidate.FullName,
				OldStage:      oldStage,
				NewStage:      newStage,
			}); err != nil {
				return err
			}
		}

		out = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TransitionApplicationStatus overwrites the application's status. The
// activity payload captures the job title and applicant name as they are at
// transition time; later renames do not rewrite history.
func (u *pipelineUsecase) TransitionApplicationStatus(ctx context.Context, actorID, applicationID int64, newStatus string) (*domain.Application, error) {
	if !domain.IsValidStage(newStatus) {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid status %q", newStatus))
	}

	var out *domain.Application
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		app, err := u.applicationRepo.GetByID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Application not found")
			}
			return apperror.Internal(err)
		}

		oldStatus := app.Status
		if err := u.applicationRepo.UpdateStatus(ctx, applicationID, newStatus); err != nil {
			return apperror.Internal(err)
		}
		app.Status = newStatus

		if oldStatus != newStatus {
			jobTitle, userName := u.resolveNames(ctx, app.JobID, app.UserID)
			if err := appendActivity(ctx, u.activityRepo, actorID, domain.ApplicationStatusChangedDetails{
				ApplicationID: app.ID,
				UserID:        app.UserID,
				UserName:      userName,
				JobID:         app.JobID,
				JobTitle:      jobTitle,
				OldStatus:     oldStatus,
				NewStatus:     newStatus,
			}); err != nil {
				return err
			}
		}

		out = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *pipelineUsecase) resolveNames(ctx context.Context, jobID, userID int64) (jobTitle, userName string) {
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

// appendActivity marshals a typed payload and appends it. Callers run it
// inside the same transaction as the state write, so a failed append rolls
// the whole mutation back.
func appendActivity(ctx context.Context, repo domain.ActivityRepository, actorID int64, details domain.ActivityDetails) error {
	activity, err := domain.NewActivity(actorID, details)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := repo.Append(ctx, activity); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
