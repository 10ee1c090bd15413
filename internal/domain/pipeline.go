package domain

import "context"

// Pipeline stages. Candidate.Stage and Application.Status share this
// vocabulary but are stored and mutated independently; keeping them in
// sync is the caller's responsibility.
const (
	StageApplied   = "applied"
	StageScreening = "screening"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageHired     = "hired"
	StageRejected  = "rejected"
)

// PipelineStages lists the forward funnel stages in order. Rejected sits
// outside the funnel and is excluded from pipeline stats.
var PipelineStages = []string{StageApplied, StageScreening, StageInterview, StageOffer, StageHired}

var validStages = map[string]bool{
	StageApplied:   true,
	StageScreening: true,
	StageInterview: true,
	StageOffer:     true,
	StageHired:     true,
	StageRejected:  true,
}

// IsValidStage reports whether s belongs to the fixed six-value vocabulary.
// Any stage may move to any other stage; there is no legality matrix.
func IsValidStage(s string) bool {
	return validStages[s]
}

// TxManager runs fn inside a single storage transaction. Every write fn
// performs through the repositories is committed or rolled back together.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PipelineUsecase applies stage/status changes and records the transition.
type PipelineUsecase interface {
	TransitionCandidateStage(ctx context.Context, actorID, candidateID int64, newStage string) (*Candidate, error)
	TransitionApplicationStatus(ctx context.Context, actorID, applicationID int64, newStatus string) (*Application, error)
}
