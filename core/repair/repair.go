package repair

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canvasmith/canvasmith/core/extract"
	"github.com/canvasmith/canvasmith/core/normalize"
	"github.com/canvasmith/canvasmith/core/schema"
	"github.com/canvasmith/canvasmith/core/validate"
	"github.com/canvasmith/canvasmith/internal/jsonschema"
	"github.com/canvasmith/canvasmith/internal/utils"
	"github.com/canvasmith/canvasmith/providers/ai"
	"github.com/canvasmith/canvasmith/providers/observability"
)

// ErrRepairFailed reports that the one-shot re-prompt also failed to produce
// schema-conformant JSON. Callers branch on it with errors.Is and fall back to
// an unstructured-text rendering path.
var ErrRepairFailed = errors.New("repair re-prompt did not produce a valid scorecard")

// PromptCap bounds how much of the original response is echoed back in the
// repair prompt.
const PromptCap = 2000

type state int

const (
	stateInitial state = iota
	stateRepairing
	stateTerminal
)

func (s state) String() string {
	switch s {
	case stateInitial:
		return "initial"
	case stateRepairing:
		return "repairing"
	default:
		return "terminal"
	}
}

// Outcome is a successful orchestration result.
type Outcome struct {
	Scorecard  schema.Scorecard
	Validation validate.Result
	// Repaired is true when the scorecard came from the re-prompted
	// response rather than the original one.
	Repaired bool
}

// Orchestrator runs the extract-validate-repair cycle for scorecards.
type Orchestrator struct {
	provider ai.Provider
	obs      observability.Observer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithObserver injects the observability capability. Default is no-op.
func WithObserver(obs observability.Observer) Option {
	return func(o *Orchestrator) {
		if obs != nil {
			o.obs = obs
		}
	}
}

// New creates an orchestrator over the given model transport.
func New(provider ai.Provider, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		provider: provider,
		obs:      observability.Noop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run processes rawText through the state machine. On success the outcome
// carries the normalized scorecard and the diagnostics of the attempt that
// succeeded. On failure the error wraps [ErrRepairFailed] together with the
// final validation diagnostics.
func (o *Orchestrator) Run(ctx context.Context, rawText string) (*Outcome, error) {
	o.transition(ctx, stateInitial)
	outcome, ok := o.attempt(ctx, rawText, false)
	if ok {
		o.transition(ctx, stateTerminal)
		return outcome, nil
	}

	o.transition(ctx, stateRepairing)
	o.obs.Counter("repair.reprompts").Add(ctx, 1)

	reply, err := o.provider.SendMessage(ctx, o.repairRequest(rawText))
	if err != nil {
		o.transition(ctx, stateTerminal)
		return nil, fmt.Errorf("%w: transport error: %v", ErrRepairFailed, err)
	}

	outcome, ok = o.attempt(ctx, reply.Content, true)
	o.transition(ctx, stateTerminal)
	if !ok {
		return nil, fmt.Errorf("%w: repaired response still invalid", ErrRepairFailed)
	}
	return outcome, nil
}

func (o *Orchestrator) transition(ctx context.Context, next state) {
	o.obs.Debug(ctx, "Repair state transition", observability.String("state", next.String()))
}

// attempt runs extraction, validation, and normalization on one response.
func (o *Orchestrator) attempt(ctx context.Context, text string, repaired bool) (*Outcome, bool) {
	candidate, found := extract.Extract(text)
	if !found {
		o.obs.Debug(ctx, "No JSON candidate found in response",
			observability.Bool("repaired", repaired))
		return nil, false
	}

	decoded, err := extract.Decode(candidate)
	if err != nil {
		o.obs.Debug(ctx, "Candidate JSON failed to decode",
			observability.Error(err),
			observability.Bool("repaired", repaired))
		return nil, false
	}

	result := validate.Validate(decoded, schema.KindScorecard)
	if !result.OK() {
		o.obs.Debug(ctx, "Scorecard validation failed",
			observability.String("errors", strings.Join(result.Errors, "; ")),
			observability.Bool("repaired", repaired))
		return nil, false
	}

	return &Outcome{
		Scorecard:  normalize.Scorecard(decoded),
		Validation: result,
		Repaired:   repaired,
	}, true
}

// repairRequest builds the single re-prompt: the required schema plus the
// original response capped to its first PromptCap bytes, with instructions to
// answer in pure JSON.
func (o *Orchestrator) repairRequest(rawText string) ai.ChatRequest {
	schemaJSON := utils.JSONToString(jsonschema.Generate[schema.Scorecard](), true)

	prompt := fmt.Sprintf(
		"Reformat the response below as a single JSON object matching this schema exactly. "+
			"Output only the JSON object, with no prose, no markdown fences, and no commentary.\n\n"+
			"Schema:\n%s\n\nResponse to reformat:\n%s",
		schemaJSON,
		utils.CapString(rawText, PromptCap),
	)

	return ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: prompt}},
	}
}
