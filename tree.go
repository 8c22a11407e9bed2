package bounce

import "slices"

// TreeEvent describes children inserted into or removed from one node of a
// tree view. Path runs from the root to the affected parent.
type TreeEvent struct {
	Path     []*Shape
	Indices  []int
	Children []*Shape
}

// TreeListener is notified when a TreeAdapter's structure changes.
type TreeListener interface {
	NodesInserted(event TreeEvent)
	NodesRemoved(event TreeEvent)
}

// TreeAdapter presents a Model as a generic tree for hierarchical views.
// Nesting shapes are branches (even when empty); every other shape is a leaf.
//
// Registered with Model.AddListener, the adapter relays each ModelEvent to its
// own TreeListeners.
type TreeAdapter struct {
	model     *Model
	listeners []TreeListener
}

// NewTreeAdapter creates an adapter over m. It does not subscribe itself;
// call m.AddListener(adapter) to relay structural changes.
func NewTreeAdapter(m *Model) *TreeAdapter {
	return &TreeAdapter{model: m}
}

// Root returns the model's root shape.
func (t *TreeAdapter) Root() *Shape {
	return t.model.Root()
}

// Child returns the child of node at index, or nil if node is not a nesting
// shape or index is out of range.
func (t *TreeAdapter) Child(node *Shape, index int) *Shape {
	if t.IsLeaf(node) {
		return nil
	}
	child, err := node.ShapeAt(index)
	if err != nil {
		return nil
	}
	return child
}

// ChildCount returns the number of children of node, 0 for leaves.
func (t *TreeAdapter) ChildCount(node *Shape) int {
	if t.IsLeaf(node) {
		return 0
	}
	return node.ShapeCount()
}

// IndexOfChild returns the position of child within parent, or -1.
func (t *TreeAdapter) IndexOfChild(parent, child *Shape) int {
	if t.IsLeaf(parent) || child == nil {
		return -1
	}
	return parent.IndexOf(child)
}

// IsLeaf reports whether node cannot hold children.
func (t *TreeAdapter) IsLeaf(node *Shape) bool {
	return node == nil || node.kind != KindNesting
}

// AddTreeListener registers l.
func (t *TreeAdapter) AddTreeListener(l TreeListener) {
	t.listeners = append(t.listeners, l)
}

// RemoveTreeListener unregisters l. No-op if l was never registered. It is
// safe to call from inside a listener callback; the event being delivered
// still reaches every listener registered when delivery began.
func (t *TreeAdapter) RemoveTreeListener(l TreeListener) {
	for i, c := range t.listeners {
		if c == l {
			t.listeners = slices.Delete(slices.Clone(t.listeners), i, i+1)
			return
		}
	}
}

// Update implements Listener. Events without a parent are dropped since they
// have no place in the tree.
func (t *TreeAdapter) Update(event ModelEvent) {
	if event.Parent == nil {
		return
	}
	te := TreeEvent{
		Path:     event.Parent.Path(),
		Indices:  []int{event.Index},
		Children: []*Shape{event.Operand},
	}
	for _, l := range t.listeners {
		switch event.Type {
		case ShapeAdded:
			l.NodesInserted(te)
		case ShapeRemoved:
			l.NodesRemoved(te)
		}
	}
}
