// Package inmemory provides a concrete scene.Node backed by plain structs.
// It exists for tests and for the CLI's placement command, where no real host
// canvas is attached.
package inmemory

import "github.com/canvasmith/canvasmith/providers/scene"

// Node is an in-memory scene node. Optional bounds sources are pointer
// fields; a nil field means the host does not expose that source.
type Node struct {
	Name string

	parent   *Node
	children []*Node
	root     bool

	BoundingBox  *scene.Rect
	RenderBounds *scene.Rect
	Transform    *scene.Transform
	W, H         *float64
	X, Y         *float64
}

// NewRoot creates a document root node.
func NewRoot(name string) *Node {
	return &Node{Name: name, root: true}
}

// NewNode creates a detached node. Attach it with AddChild.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// AddChild attaches child to n and returns the child for chaining.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent implements scene.Node. The root's parent is nil.
func (n *Node) Parent() scene.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// IsDocumentRoot implements scene.Node.
func (n *Node) IsDocumentRoot() bool {
	return n.root
}

// AbsoluteBoundingBox implements scene.Node.
func (n *Node) AbsoluteBoundingBox() (scene.Rect, bool) {
	if n.BoundingBox == nil {
		return scene.Rect{}, false
	}
	return *n.BoundingBox, true
}

// AbsoluteRenderBounds implements scene.Node.
func (n *Node) AbsoluteRenderBounds() (scene.Rect, bool) {
	if n.RenderBounds == nil {
		return scene.Rect{}, false
	}
	return *n.RenderBounds, true
}

// AbsoluteTransform implements scene.Node.
func (n *Node) AbsoluteTransform() (scene.Transform, bool) {
	if n.Transform == nil {
		return scene.Transform{}, false
	}
	return *n.Transform, true
}

// Size implements scene.Node.
func (n *Node) Size() (width, height float64, ok bool) {
	if n.W == nil || n.H == nil {
		return 0, 0, false
	}
	return *n.W, *n.H, true
}

// Position implements scene.Node.
func (n *Node) Position() (x, y float64, ok bool) {
	if n.X == nil || n.Y == nil {
		return 0, 0, false
	}
	return *n.X, *n.Y, true
}

// Float is a convenience for building optional float fields.
func Float(v float64) *float64 {
	return &v
}
