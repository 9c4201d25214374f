package place

import (
	"math"

	"github.com/canvasmith/canvasmith/providers/scene"
)

// TopLevelAncestor walks the parent chain upward and returns the first node
// whose parent is the document root. If the chain never reaches the root
// (a malformed tree, or a cycle) the original node is returned unchanged as a
// deliberate safety fallback.
func TopLevelAncestor(node scene.Node) scene.Node {
	if node == nil {
		return nil
	}

	visited := map[scene.Node]bool{}
	current := node
	for current != nil && !visited[current] {
		visited[current] = true

		parent := current.Parent()
		if parent == nil {
			break
		}
		if parent.IsDocumentRoot() {
			return current
		}
		current = parent
	}
	return node
}

// ResolveBounds computes a best-effort absolute bounding rectangle for node,
// trying each strategy in strict priority order:
//
//  1. the host's precomputed absolute bounding box,
//  2. the host's absolute render bounds,
//  3. the absolute transform combined with the intrinsic size,
//  4. manual accumulation of local offsets up to (excluding) the root.
//
// Rectangles with non-finite components or non-positive dimensions are
// rejected. A rectangle sitting exactly at the origin whose node is not
// parented by the document root is discarded as untrustworthy: a non-root
// object legitimately at (0,0) is a known source of wrong placements, and the
// viewport fallback is the honest answer there.
func ResolveBounds(node scene.Node) (scene.Rect, bool) {
	if node == nil {
		return scene.Rect{}, false
	}

	rect, ok := resolveRaw(node)
	if !ok {
		return scene.Rect{}, false
	}

	if rect.X == 0 && rect.Y == 0 && !parentIsRoot(node) {
		return scene.Rect{}, false
	}
	return rect, true
}

func resolveRaw(node scene.Node) (scene.Rect, bool) {
	if rect, ok := node.AbsoluteBoundingBox(); ok && usableRect(rect) {
		return rect, true
	}
	if rect, ok := node.AbsoluteRenderBounds(); ok && usableRect(rect) {
		return rect, true
	}
	if tf, ok := node.AbsoluteTransform(); ok {
		if w, h, sized := node.Size(); sized {
			rect := scene.Rect{X: tf.Tx, Y: tf.Ty, Width: w, Height: h}
			if usableRect(rect) {
				return rect, true
			}
		}
	}
	return accumulateOffsets(node)
}

// accumulateOffsets sums local offsets from node up to, but not including,
// the document root. Any node in the chain missing its local position makes
// the whole accumulation unusable.
func accumulateOffsets(node scene.Node) (scene.Rect, bool) {
	w, h, ok := node.Size()
	if !ok {
		return scene.Rect{}, false
	}

	var x, y float64
	visited := map[scene.Node]bool{}
	for current := node; current != nil && !current.IsDocumentRoot() && !visited[current]; current = current.Parent() {
		visited[current] = true
		px, py, ok := current.Position()
		if !ok {
			return scene.Rect{}, false
		}
		x += px
		y += py
	}

	rect := scene.Rect{X: x, Y: y, Width: w, Height: h}
	if !usableRect(rect) {
		return scene.Rect{}, false
	}
	return rect, true
}

func parentIsRoot(node scene.Node) bool {
	parent := node.Parent()
	return parent != nil && parent.IsDocumentRoot()
}

func usableRect(r scene.Rect) bool {
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width > 0 && r.Height > 0
}
