package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/canvasmith/canvasmith/core/extract"
	"github.com/canvasmith/canvasmith/core/normalize"
	"github.com/canvasmith/canvasmith/core/place"
	"github.com/canvasmith/canvasmith/core/repair"
	"github.com/canvasmith/canvasmith/core/schema"
	"github.com/canvasmith/canvasmith/core/validate"
	"github.com/canvasmith/canvasmith/providers/ai"
	"github.com/canvasmith/canvasmith/providers/observability"
	"github.com/canvasmith/canvasmith/providers/scene"
)

// WorkAdapter is an optional integration hook that can rewrite raw model text
// before extraction runs. It replaces runtime module resolution: callers pass
// the capability explicitly at construction time, and nil means absent.
type WorkAdapter interface {
	PrepareText(raw string) string
}

// Outcome is the result of processing one model response.
type Outcome struct {
	Kind       schema.Kind     `json:"kind"`
	Candidate  string          `json:"candidate"`
	Validation validate.Result `json:"validation"`
	// Spec is the normalized artifact: schema.Scorecard,
	// schema.DeceptiveReport, schema.DesignSpec, schema.DiscoverySpec, or
	// schema.ContentTable depending on Kind.
	Spec any `json:"spec"`
	// Repaired is true when the spec came from the one-shot repair cycle.
	Repaired bool `json:"repaired,omitempty"`
}

// Pipeline processes model responses into placed artifacts.
type Pipeline struct {
	obs       observability.Observer
	transport ai.Provider
	adapter   WorkAdapter
	engine    *place.Engine
	viewport  scene.Viewport
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver injects the observability capability. Default is no-op.
func WithObserver(obs observability.Observer) Option {
	return func(p *Pipeline) {
		if obs != nil {
			p.obs = obs
		}
	}
}

// WithTransport injects the model transport used by the scorecard repair
// cycle. Without it, scorecard responses that fail validation are returned
// with their diagnostics and no repair is attempted.
func WithTransport(provider ai.Provider) Option {
	return func(p *Pipeline) { p.transport = provider }
}

// WithWorkAdapter injects the optional text-preparation capability.
func WithWorkAdapter(adapter WorkAdapter) Option {
	return func(p *Pipeline) { p.adapter = adapter }
}

// WithViewport injects the viewport read by the no-anchor placement fallback.
func WithViewport(viewport scene.Viewport) Option {
	return func(p *Pipeline) { p.viewport = viewport }
}

// New creates a Pipeline with the given collaborators.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		obs: observability.Noop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.engine = place.NewEngine(p.viewport)
	return p
}

// Process turns one raw model response into a normalized artifact spec.
//
// Extraction failure returns extract.ErrNoJSON: the text is simply not
// structured, and the caller renders it as plain text. Validation failure is
// not an error: the outcome carries the diagnostics alongside the normalized
// spec, because normalization is unconditional. The one exception is the
// scorecard kind with a transport configured: there a failed validation
// triggers the one-shot repair cycle, and only a failed repair surfaces as
// repair.ErrRepairFailed.
func (p *Pipeline) Process(ctx context.Context, raw string, kind schema.Kind) (*Outcome, error) {
	requestID := uuid.NewString()
	attrs := []observability.Attribute{
		observability.String("request_id", requestID),
		observability.String("kind", kind.String()),
	}

	if p.adapter != nil {
		raw = p.adapter.PrepareText(raw)
	}

	p.obs.Debug(ctx, "Processing model response", append(attrs,
		observability.Int("raw_len", len(raw)))...)
	p.obs.Counter("pipeline.requests").Add(ctx, 1, attrs...)

	if kind == schema.KindScorecard && p.transport != nil {
		return p.processScorecard(ctx, raw, attrs)
	}

	candidate, ok := extract.Extract(raw)
	if !ok {
		p.obs.Info(ctx, "No structured payload in response", attrs...)
		p.obs.Counter("pipeline.extraction_misses").Add(ctx, 1, attrs...)
		return nil, extract.ErrNoJSON
	}

	decoded, err := extract.Decode(candidate)
	if err != nil {
		p.obs.Info(ctx, "Candidate JSON failed to decode", append(attrs, observability.Error(err))...)
		return nil, fmt.Errorf("%w: %v", extract.ErrNoJSON, err)
	}

	result := validate.Validate(decoded, kind)
	if !result.OK() {
		p.obs.Warn(ctx, "Payload failed validation", append(attrs,
			observability.Int("errors", len(result.Errors)))...)
	}

	return &Outcome{
		Kind:       kind,
		Candidate:  candidate,
		Validation: result,
		Spec:       normalize.Normalize(decoded, kind),
	}, nil
}

func (p *Pipeline) processScorecard(ctx context.Context, raw string, attrs []observability.Attribute) (*Outcome, error) {
	orchestrator := repair.New(p.transport, repair.WithObserver(p.obs))

	outcome, err := orchestrator.Run(ctx, raw)
	if err != nil {
		if errors.Is(err, repair.ErrRepairFailed) {
			p.obs.Warn(ctx, "Scorecard repair failed, falling back to unstructured text", append(attrs, observability.Error(err))...)
		}
		return nil, err
	}

	if outcome.Repaired {
		p.obs.Info(ctx, "Scorecard recovered via repair re-prompt", attrs...)
	}
	return &Outcome{
		Kind:       schema.KindScorecard,
		Validation: outcome.Validation,
		Spec:       outcome.Scorecard,
		Repaired:   outcome.Repaired,
	}, nil
}

// PlaceArtifact resolves the anchor node's bounds and computes where an
// artifact of the given size lands. A nil node, unresolvable bounds, or an
// anchor without room on the requested side all fall back to viewport
// centering; placement never fails.
func (p *Pipeline) PlaceArtifact(ctx context.Context, node scene.Node, width, height float64, opts ...place.Option) place.Placement {
	var anchor *scene.Rect
	if node != nil {
		if rect, ok := place.ResolveBounds(node); ok {
			anchor = &rect
		}
	}

	placement := p.engine.Place(anchor, width, height, opts...)

	p.obs.Debug(ctx, "Artifact placed",
		observability.Float64("x", placement.X),
		observability.Float64("y", placement.Y),
		observability.String("method", string(placement.Method)),
		observability.Bool("had_anchor", anchor != nil))
	p.obs.Counter("pipeline.placements").Add(ctx, 1,
		observability.String("method", string(placement.Method)))

	return placement
}
