package client

import (
	"context"
	"errors"
	"sync"

	"github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	"github.com/ghanabuild/estimator-backend/internal/estimation/validation"
	"github.com/ghanabuild/estimator-backend/internal/telemetry"
)

// ErrNothingToRetry is returned when Retry is invoked without a failed
// attempt to replay.
var ErrNothingToRetry = errors.New("no failed estimate request to retry")

// Orchestrator owns the request lifecycle between raw user input and the
// remote pricing endpoint. Nothing prevents a second Submit while an earlier
// one is still pending; racing responses resolve last-response-wins and the
// superseded call is not cancelled.
type Orchestrator struct {
	client *Client
	sink   telemetry.Sink

	mu       sync.Mutex
	state    RequestState
	lastSpec *domain.ProjectSpecification
}

func NewOrchestrator(c *Client, sink telemetry.Sink) *Orchestrator {
	if sink == nil {
		sink = telemetry.Nop()
	}
	return &Orchestrator{
		client: c,
		sink:   sink,
		state:  RequestState{Phase: PhaseIdle},
	}
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() RequestState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Submit validates the raw input and, when it passes, issues the estimate
// request and blocks until it resolves. A validation failure returns the
// ordered violation messages and leaves the current phase untouched: it is
// not a request failure.
func (o *Orchestrator) Submit(ctx context.Context, raw domain.RawInput) []string {
	res := validation.Validate(raw)
	if !res.Valid() {
		o.sink.Emit(ctx, telemetry.NewEvent(telemetry.EventValidationFailed, map[string]any{
			"violations": res.Violations,
		}))
		return res.Violations
	}

	spec := *res.Spec
	o.mu.Lock()
	o.lastSpec = &spec
	o.state = RequestState{Phase: PhasePending, Spec: &spec}
	o.mu.Unlock()

	o.sink.Emit(ctx, telemetry.NewEvent(telemetry.EventSubmitted, map[string]any{
		"region":      spec.Region,
		"projectType": spec.ProjectType,
	}))

	o.resolve(ctx, spec)
	return nil
}

// Retry replays the specification from the failed attempt, byte for byte,
// without re-validating it. Retries are strictly user-initiated.
func (o *Orchestrator) Retry(ctx context.Context) error {
	o.mu.Lock()
	if o.state.Phase != PhaseFailed || o.lastSpec == nil {
		o.mu.Unlock()
		return ErrNothingToRetry
	}
	spec := *o.lastSpec
	o.state = RequestState{Phase: PhasePending, Spec: o.lastSpec}
	o.mu.Unlock()

	o.sink.Emit(ctx, telemetry.NewEvent(telemetry.EventRetried, map[string]any{
		"region":      spec.Region,
		"projectType": spec.ProjectType,
	}))

	o.resolve(ctx, spec)
	return nil
}

// resolve performs the single suspension point of the lifecycle and applies
// the outcome. Whichever resolve finishes last determines the rendered state.
func (o *Orchestrator) resolve(ctx context.Context, spec domain.ProjectSpecification) {
	est, failure := o.client.Estimate(ctx, spec)

	o.mu.Lock()
	if failure != nil {
		specCopy := spec
		o.state = RequestState{Phase: PhaseFailed, Spec: &specCopy, Failure: failure}
	} else {
		o.state = RequestState{Phase: PhaseSucceeded, Estimate: est}
	}
	o.mu.Unlock()

	if failure != nil {
		o.sink.Emit(ctx, telemetry.NewEvent(telemetry.EventRequestFailed, map[string]any{
			"kind":    failure.Kind.String(),
			"message": failure.Message,
		}))
		return
	}
	o.sink.Emit(ctx, telemetry.NewEvent(telemetry.EventRequestSucceeded, map[string]any{
		"totalCost": est.TotalCost,
	}))
}
