package scene

// Rect is an absolute bounding rectangle in canvas units. A resolved Rect
// always has Width > 0 and Height > 0.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transform is an absolute 2-D affine transform. Tx and Ty carry the
// translation; the linear part is exposed for hosts that report it but the
// resolver only consumes the translation.
type Transform struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// Node is an opaque handle onto one object in the host scene graph. Every
// accessor is best-effort: a host may expose none, some, or all of the bounds
// sources, and the ok result reports availability rather than validity;
// callers apply their own sanity checks.
type Node interface {
	// Parent returns the parent handle, or nil when the node has none.
	Parent() Node

	// IsDocumentRoot reports whether this node is the document root.
	IsDocumentRoot() bool

	// AbsoluteBoundingBox returns the precomputed absolute bounding
	// rectangle, when the host exposes one.
	AbsoluteBoundingBox() (Rect, bool)

	// AbsoluteRenderBounds returns the precomputed absolute render bounds,
	// which account for effects and strokes, when exposed.
	AbsoluteRenderBounds() (Rect, bool)

	// AbsoluteTransform returns the absolute transform, when exposed.
	AbsoluteTransform() (Transform, bool)

	// Size returns the node's intrinsic width and height, when exposed.
	Size() (width, height float64, ok bool)

	// Position returns the node's local offset relative to its parent,
	// when exposed.
	Position() (x, y float64, ok bool)
}

// Viewport reports the current viewport center, read by the no-anchor
// placement fallback. Implementations must be safe for concurrent reads.
type Viewport interface {
	Center() (x, y float64)
}

// StaticViewport is a Viewport fixed at a point. The zero value centers on
// the origin.
type StaticViewport struct {
	X, Y float64
}

// Center implements Viewport.
func (v StaticViewport) Center() (x, y float64) {
	return v.X, v.Y
}
