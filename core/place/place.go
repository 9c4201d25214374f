package place

import (
	"fmt"

	"github.com/canvasmith/canvasmith/providers/scene"
)

// Mode selects which side of the anchor the artifact lands on.
type Mode string

const (
	ModeLeft   Mode = "left"
	ModeRight  Mode = "right"
	ModeAbove  Mode = "above"
	ModeBelow  Mode = "below"
	ModeCenter Mode = "center"
)

// Method records which placement path produced the result.
type Method string

const (
	MethodAnchor   Method = "anchor"
	MethodViewport Method = "viewport"
)

// Default placement parameters. MinY keeps artifacts from landing above the
// visible top edge of typical canvases.
const (
	DefaultOffset = 40.0
	DefaultMinX   = 0.0
	DefaultMinY   = 40.0
)

// Placement is the computed target position. X >= MinX and Y >= MinY hold on
// every path; Reason is set when a usable anchor had to be abandoned.
type Placement struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Method Method  `json:"method"`
	Reason string  `json:"reason,omitempty"`
}

// Options configures one placement computation.
type Options struct {
	Mode   Mode
	Offset float64
	MinX   float64
	MinY   float64
}

// Option mutates Options.
type Option func(*Options)

// WithMode sets the placement mode. Default is ModeLeft.
func WithMode(mode Mode) Option {
	return func(o *Options) { o.Mode = mode }
}

// WithOffset sets the gap between anchor and artifact.
func WithOffset(offset float64) Option {
	return func(o *Options) { o.Offset = offset }
}

// WithMinX sets the left clamp boundary.
func WithMinX(minX float64) Option {
	return func(o *Options) { o.MinX = minX }
}

// WithMinY sets the top clamp boundary.
func WithMinY(minY float64) Option {
	return func(o *Options) { o.MinY = minY }
}

// Engine computes placements against a viewport. The viewport is the only
// ambient state the engine reads, and only on the no-anchor fallback path.
type Engine struct {
	viewport scene.Viewport
}

// NewEngine creates a placement engine. A nil viewport behaves as a viewport
// centered on the origin.
func NewEngine(viewport scene.Viewport) *Engine {
	if viewport == nil {
		viewport = scene.StaticViewport{}
	}
	return &Engine{viewport: viewport}
}

// Place computes the target coordinates for an artifact of the given size.
// With no anchor, the artifact centers on the viewport. With an anchor, the
// mode's formula applies after a sufficiency pre-check: an anchor without
// room on the requested side abandons anchor placement entirely and falls
// back to viewport centering, rather than letting the clamp slam the artifact
// into the anchor. The final MinX/MinY clamp applies on every path.
func (e *Engine) Place(anchor *scene.Rect, width, height float64, opts ...Option) Placement {
	o := Options{
		Mode:   ModeLeft,
		Offset: DefaultOffset,
		MinX:   DefaultMinX,
		MinY:   DefaultMinY,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if anchor == nil {
		return e.viewportFallback(width, height, o, "")
	}
	if !usableRect(*anchor) {
		return e.viewportFallback(width, height, o, "anchor rectangle is degenerate")
	}

	var x, y float64
	switch o.Mode {
	case ModeLeft:
		if anchor.X < width+o.Offset {
			reason := fmt.Sprintf("anchor x %v leaves no room for width %v plus offset %v", anchor.X, width, o.Offset)
			return e.viewportFallback(width, height, o, reason)
		}
		x = anchor.X - width - o.Offset
		y = anchor.Y
	case ModeRight:
		x = anchor.X + anchor.Width + o.Offset
		y = anchor.Y
	case ModeAbove:
		if anchor.Y < height+o.Offset {
			reason := fmt.Sprintf("anchor y %v leaves no room for height %v plus offset %v", anchor.Y, height, o.Offset)
			return e.viewportFallback(width, height, o, reason)
		}
		x = anchor.X
		y = anchor.Y - height - o.Offset
	case ModeBelow:
		x = anchor.X
		y = anchor.Y + anchor.Height + o.Offset
	case ModeCenter:
		x = anchor.X + anchor.Width/2 - width/2
		y = anchor.Y + anchor.Height/2 - height/2
	default:
		return e.viewportFallback(width, height, o, fmt.Sprintf("unknown placement mode %q", o.Mode))
	}

	return clamp(Placement{X: x, Y: y, Method: MethodAnchor}, o)
}

func (e *Engine) viewportFallback(width, height float64, o Options, reason string) Placement {
	cx, cy := e.viewport.Center()
	return clamp(Placement{
		X:      cx - width/2,
		Y:      cy - height/2,
		Method: MethodViewport,
		Reason: reason,
	}, o)
}

func clamp(p Placement, o Options) Placement {
	if p.X < o.MinX {
		p.X = o.MinX
	}
	if p.Y < o.MinY {
		p.Y = o.MinY
	}
	return p
}
