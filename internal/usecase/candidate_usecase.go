package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/validation"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	activityRepo  domain.ActivityRepository
	pipeline      domain.PipelineUsecase
	tx            domain.TxManager
	validate      *validator.Validate
}

func NewCandidateUsecase(
	candidateRepo domain.CandidateRepository,
	activityRepo domain.ActivityRepository,
	pipeline domain.PipelineUsecase,
	tx domain.TxManager,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		activityRepo:  activityRepo,
		pipeline:      pipeline,
		tx:            tx,
		validate:      validate,
	}
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, actorID int64, candidate *domain.Candidate) error {
	if candidate.Stage == "" {
		candidate.Stage = domain.StageApplied
	}
	if err := u.validate.Struct(candidate); err != nil {
		return apperror.Validation("Validation failed", validation.Translate(err))
	}

	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.candidateRepo.Create(ctx, candidate); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return apperror.BadRequest("A candidate with this email already exists")
			}
			return apperror.Internal(err)
		}
		return appendActivity(ctx, u.activityRepo, actorID, domain.CandidateCreatedDetails{
			CandidateID:   candidate.ID,
			CandidateName: candidate.FullName,
		})
	})
}

// UpdateCandidate applies profile fields directly and routes a stage change
// through the pipeline so it is recorded as a transition.
func (u *candidateUsecase) UpdateCandidate(ctx context.Context, actorID, id int64, patch domain.CandidatePatch) (*domain.Candidate, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.Translate(err))
	}

	var out *domain.Candidate
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		candidate, err := u.candidateRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Candidate not found")
			}
			return apperror.Internal(err)
		}

		applyCandidatePatch(candidate, patch)
		if err := u.candidateRepo.Update(ctx, candidate); err != nil {
			return apperror.Internal(err)
		}

		if patch.Stage != nil {
			candidate, err = u.pipeline.TransitionCandidateStage(ctx, actorID, id, *patch.Stage)
			if err != nil {
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

func applyCandidatePatch(candidate *domain.Candidate, patch domain.CandidatePatch) {
	if patch.FullName != nil {
		candidate.FullName = *patch.FullName
	}
	if patch.Email != nil {
		candidate.Email = *patch.Email
	}
	if patch.Phone != nil {
		candidate.Phone = patch.Phone
	}
	if patch.ResumeURL != nil {
		candidate.ResumeURL = patch.ResumeURL
	}
	if patch.Education != nil {
		candidate.Education = patch.Education
	}
	if patch.Experience != nil {
		candidate.Experience = patch.Experience
	}
	if patch.Skills != nil {
		candidate.Skills = patch.Skills
	}
	if patch.Notes != nil {
		candidate.Notes = patch.Notes
	}
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, stage string) ([]domain.Candidate, error) {
	if stage == "" {
		candidates, err := u.candidateRepo.Fetch(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return candidates, nil
	}

	if !domain.IsValidStage(stage) {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid stage %q", stage))
	}
	candidates, err := u.candidateRepo.FetchByStage(ctx, stage)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

func (u *candidateUsecase) SetProfilePhoto(ctx context.Context, id int64, photoURL string) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}

	candidate.PhotoURL = &photoURL
	if err := u.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}
