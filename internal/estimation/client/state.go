package client

import "github.com/ghanabuild/estimator-backend/internal/estimation/domain"

// Phase is the lifecycle phase of the current estimate request.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// RequestState is a tagged variant: exactly one phase holds at a time, and
// only the data that phase carries is set. Loading, error and result can
// never be set simultaneously.
type RequestState struct {
	Phase    Phase
	Spec     *domain.ProjectSpecification // Pending, Failed
	Estimate *domain.CostEstimate         // Succeeded
	Failure  *Failure                     // Failed
}
