package bounce

import (
	"slices"
	"testing"
)

type recordingTreeListener struct {
	inserted []TreeEvent
	removed  []TreeEvent
}

func (l *recordingTreeListener) NodesInserted(e TreeEvent) { l.inserted = append(l.inserted, e) }
func (l *recordingTreeListener) NodesRemoved(e TreeEvent)  { l.removed = append(l.removed, e) }

func TestTreeAdapterQueries(t *testing.T) {
	m := NewModel(200, 200)
	nest := NewNesting(Config{Width: 100, Height: 100})
	leaf := NewRectangle(DefaultConfig())
	_ = m.Add(nest, m.Root())
	_ = m.Add(leaf, nest)

	tree := NewTreeAdapter(m)
	if tree.Root() != m.Root() {
		t.Error("Root should be the model root")
	}
	if tree.ChildCount(m.Root()) != 1 || tree.ChildCount(leaf) != 0 {
		t.Errorf("ChildCount = %d, %d", tree.ChildCount(m.Root()), tree.ChildCount(leaf))
	}
	if tree.Child(nest, 0) != leaf {
		t.Error("Child(nest, 0) should be leaf")
	}
	if tree.Child(nest, 1) != nil || tree.Child(nest, -1) != nil || tree.Child(leaf, 0) != nil {
		t.Error("out of range and leaf lookups should return nil")
	}
	if tree.IndexOfChild(nest, leaf) != 0 || tree.IndexOfChild(m.Root(), leaf) != -1 || tree.IndexOfChild(leaf, nest) != -1 {
		t.Error("IndexOfChild mismatch")
	}
	empty := NewNesting(Config{Width: 10, Height: 10})
	if tree.IsLeaf(empty) || !tree.IsLeaf(leaf) {
		t.Error("nesting shapes are branches even when empty; others are leaves")
	}
}

func TestTreeAdapterRelaysEvents(t *testing.T) {
	m := NewModel(200, 200)
	tree := NewTreeAdapter(m)
	m.AddListener(tree)
	l := &recordingTreeListener{}
	tree.AddTreeListener(l)

	nest := NewNesting(Config{Width: 100, Height: 100})
	leaf := NewOval(DefaultConfig())
	_ = m.Add(nest, m.Root())
	_ = m.Add(leaf, nest)
	_ = m.Remove(leaf)

	if len(l.inserted) != 2 || len(l.removed) != 1 {
		t.Fatalf("inserted %d, removed %d, want 2, 1", len(l.inserted), len(l.removed))
	}
	e := l.inserted[1]
	if !slices.Equal(e.Path, []*Shape{m.Root(), nest}) {
		t.Errorf("Path = %v, want [root nest]", e.Path)
	}
	if !slices.Equal(e.Indices, []int{0}) || !slices.Equal(e.Children, []*Shape{leaf}) {
		t.Errorf("event = %+v", e)
	}
	if r := l.removed[0]; r.Children[0] != leaf || r.Indices[0] != 0 {
		t.Errorf("removed event = %+v", r)
	}

	tree.RemoveTreeListener(l)
	_ = m.Add(NewRectangle(DefaultConfig()), m.Root())
	if len(l.inserted) != 2 {
		t.Error("removed listener should not be notified")
	}
}

func TestTreeAdapterDropsParentlessEvents(t *testing.T) {
	tree := NewTreeAdapter(NewModel(10, 10))
	l := &recordingTreeListener{}
	tree.AddTreeListener(l)
	tree.Update(ModelEvent{Type: ShapeAdded, Operand: NewRectangle(DefaultConfig())})
	if len(l.inserted) != 0 {
		t.Error("event without parent should be dropped")
	}
}

type selfRemovingTreeListener struct {
	tree     *TreeAdapter
	inserted int
}

func (l *selfRemovingTreeListener) NodesInserted(TreeEvent) {
	l.inserted++
	l.tree.RemoveTreeListener(l)
}

func (l *selfRemovingTreeListener) NodesRemoved(TreeEvent) {}

func TestTreeAdapterListenerRemovesItself(t *testing.T) {
	m := NewModel(200, 200)
	tree := NewTreeAdapter(m)
	m.AddListener(tree)

	first := &selfRemovingTreeListener{tree: tree}
	second := &recordingTreeListener{}
	third := &recordingTreeListener{}
	tree.AddTreeListener(first)
	tree.AddTreeListener(second)
	tree.AddTreeListener(third)

	_ = m.Add(NewRectangle(DefaultConfig()), m.Root())
	_ = m.Add(NewOval(DefaultConfig()), m.Root())

	if first.inserted != 1 {
		t.Errorf("first.inserted = %d, want 1", first.inserted)
	}
	if len(second.inserted) != 2 || len(third.inserted) != 2 {
		t.Errorf("inserted = %d, %d, want 2, 2", len(second.inserted), len(third.inserted))
	}
}
