package bounce

import (
	"errors"
	"testing"
)

func TestNewModel(t *testing.T) {
	m := NewModel(400, 300)
	root := m.Root()
	if root == nil {
		t.Fatal("root should not be nil")
	}
	if root.Kind() != KindNesting {
		t.Errorf("root.Kind = %v, want NestingShape", root.Kind())
	}
	if root.Width() != 400 || root.Height() != 300 {
		t.Errorf("root size = %dx%d, want 400x300", root.Width(), root.Height())
	}
	if w, h := m.Bounds(); w != 400 || h != 300 {
		t.Errorf("Bounds = %dx%d, want 400x300", w, h)
	}
}

func TestModelAddFiresEvent(t *testing.T) {
	m := NewModel(200, 200)
	var got []ModelEvent
	m.AddListener(ListenerFunc(func(e ModelEvent) { got = append(got, e) }))

	a := NewRectangle(DefaultConfig())
	b := NewOval(DefaultConfig())
	for _, s := range []*Shape{a, b} {
		if err := m.Add(s, m.Root()); err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	e := got[1]
	if e.Type != ShapeAdded || e.Operand != b || e.Index != 1 || e.Parent != m.Root() || e.Source != m {
		t.Errorf("event = %+v", e)
	}
}

func TestModelRemoveFiresEventWithOldIndex(t *testing.T) {
	m := NewModel(200, 200)
	a := NewRectangle(DefaultConfig())
	b := NewOval(DefaultConfig())
	_ = m.Add(a, m.Root())
	_ = m.Add(b, m.Root())

	var got []ModelEvent
	m.AddListener(ListenerFunc(func(e ModelEvent) { got = append(got, e) }))
	if err := m.Remove(b); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("events = %d, want 1", len(got))
	}
	if e := got[0]; e.Type != ShapeRemoved || e.Operand != b || e.Index != 1 || e.Parent != m.Root() {
		t.Errorf("event = %+v", e)
	}
	if b.Parent() != nil {
		t.Error("b should be detached")
	}
}

func TestModelRejectedChangesFireNothing(t *testing.T) {
	m := NewModel(100, 100)
	fired := 0
	m.AddListener(ListenerFunc(func(ModelEvent) { fired++ }))

	big := NewRectangle(Config{Width: 200, Height: 10})
	if err := m.Add(big, m.Root()); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Add err = %v, want ErrOutOfBounds", err)
	}
	if err := m.Add(NewRectangle(DefaultConfig()), nil); !errors.Is(err, ErrInvalidAttachment) {
		t.Errorf("Add nil parent err = %v, want ErrInvalidAttachment", err)
	}
	if err := m.Remove(big); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove err = %v, want ErrNotFound", err)
	}
	if fired != 0 {
		t.Errorf("listener fired %d times, want 0", fired)
	}
}

func TestModelRemoveListener(t *testing.T) {
	m := NewModel(100, 100)
	var a, b int
	removeA := m.AddListener(ListenerFunc(func(ModelEvent) { a++ }))
	m.AddListener(ListenerFunc(func(ModelEvent) { b++ }))

	_ = m.Add(NewRectangle(DefaultConfig()), m.Root())
	removeA()
	_ = m.Add(NewRectangle(DefaultConfig()), m.Root())

	if a != 1 || b != 2 {
		t.Errorf("calls = %d, %d, want 1, 2", a, b)
	}
}

func TestModelListenerRemovesItselfDuringUpdate(t *testing.T) {
	m := NewModel(100, 100)
	var a, b, c int
	var removeA func()
	removeA = m.AddListener(ListenerFunc(func(ModelEvent) {
		a++
		removeA()
	}))
	m.AddListener(ListenerFunc(func(ModelEvent) { b++ }))
	m.AddListener(ListenerFunc(func(ModelEvent) { c++ }))

	_ = m.Add(NewRectangle(DefaultConfig()), m.Root())
	if a != 1 || b != 1 || c != 1 {
		t.Errorf("first event calls = %d, %d, %d, want 1, 1, 1", a, b, c)
	}

	_ = m.Add(NewRectangle(DefaultConfig()), m.Root())
	if a != 1 || b != 2 || c != 2 {
		t.Errorf("second event calls = %d, %d, %d, want 1, 2, 2", a, b, c)
	}
}

func TestModelClockMovesTree(t *testing.T) {
	m := NewModel(100, 100)
	s := NewRectangle(Config{X: 10, Y: 10, DeltaX: 3, DeltaY: 4, Width: 10, Height: 10})
	if err := m.Add(s, m.Root()); err != nil {
		t.Fatal(err)
	}
	m.Clock()
	if s.X() != 13 || s.Y() != 14 {
		t.Errorf("position = (%d, %d), want (13, 14)", s.X(), s.Y())
	}
	if r := m.Root(); r.X() != 0 || r.Y() != 0 {
		t.Errorf("root moved to (%d, %d)", r.X(), r.Y())
	}
}

func TestModelPaint(t *testing.T) {
	m := NewModel(100, 100)
	_ = m.Add(NewOval(Config{X: 1, Y: 2, Width: 3, Height: 4}), m.Root())
	p := NewLogPainter()
	m.Paint(p)
	if want := black + "(rectangle 0,0,100,100)" + black + "(oval 1,2,3,4)"; p.String() != want {
		t.Errorf("log = %s, want %s", p, want)
	}
}

func TestModelSetDebugMode(t *testing.T) {
	m := NewModel(100, 100)
	m.SetDebugMode(true)
	if !m.debug || !globalDebug {
		t.Error("debug should be true")
	}
	m.Clock()
	m.Paint(NewLogPainter())
	if m.stats.shapeCount != 1 {
		t.Errorf("shapeCount = %d, want 1", m.stats.shapeCount)
	}
	m.SetDebugMode(false)
	if m.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestEventTypeString(t *testing.T) {
	if ShapeAdded.String() != "ShapeAdded" || ShapeRemoved.String() != "ShapeRemoved" {
		t.Errorf("names = %v, %v", ShapeAdded, ShapeRemoved)
	}
}
