package bounce

import (
	"fmt"
	"log"
	"slices"
	"time"
)

// EventType identifies a structural change to a Model's shape tree.
type EventType uint8

const (
	ShapeAdded   EventType = iota // a shape was attached to a nesting shape
	ShapeRemoved                  // a shape was detached from a nesting shape
)

func (t EventType) String() string {
	switch t {
	case ShapeAdded:
		return "ShapeAdded"
	case ShapeRemoved:
		return "ShapeRemoved"
	}
	return fmt.Sprintf("EventType(%d)", t)
}

// ModelEvent describes one successful Add or Remove. Index is the operand's
// position within Parent: after insertion for ShapeAdded, before removal for
// ShapeRemoved.
type ModelEvent struct {
	Type    EventType
	Operand *Shape
	Index   int
	Parent  *Shape
	Source  *Model
}

// Listener receives model events synchronously, after the change is applied.
type Listener interface {
	Update(event ModelEvent)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(event ModelEvent)

// Update calls f(event).
func (f ListenerFunc) Update(event ModelEvent) { f(event) }

type listenerEntry struct {
	id uint32
	l  Listener
}

// Model is the top-level object that owns the shape tree, the world bounds it
// animates within, and the listeners notified of structural changes.
type Model struct {
	root   *Shape
	width  int
	height int
	debug  bool

	listeners      []listenerEntry
	nextListenerID uint32

	stats debugStats
}

// NewModel creates a model whose root is a stationary nesting shape covering
// a width x height world.
func NewModel(width, height int) *Model {
	root := NewNesting(Config{Width: width, Height: height})
	return &Model{root: root, width: width, height: height}
}

// Root returns the model's root nesting shape.
func (m *Model) Root() *Shape {
	return m.root
}

// Bounds returns the world size the root moves within.
func (m *Model) Bounds() (width, height int) {
	return m.width, m.height
}

// Add attaches shape to parent and notifies listeners. See Shape.Add for the
// conditions under which the attachment is rejected.
func (m *Model) Add(shape, parent *Shape) error {
	if parent == nil {
		return fmt.Errorf("add %v: nil parent: %w", shape, ErrInvalidAttachment)
	}
	if err := parent.Add(shape); err != nil {
		if m.debug {
			log.Printf("bounce: %v", err)
		}
		return err
	}
	m.fire(ModelEvent{
		Type:    ShapeAdded,
		Operand: shape,
		Index:   parent.IndexOf(shape),
		Parent:  parent,
		Source:  m,
	})
	return nil
}

// Remove detaches shape from its parent and notifies listeners.
func (m *Model) Remove(shape *Shape) error {
	if shape == nil || shape.parent == nil {
		return fmt.Errorf("remove %v: no parent: %w", shape, ErrNotFound)
	}
	parent := shape.parent
	index := parent.IndexOf(shape)
	if err := parent.Remove(shape); err != nil {
		return err
	}
	m.fire(ModelEvent{
		Type:    ShapeRemoved,
		Operand: shape,
		Index:   index,
		Parent:  parent,
		Source:  m,
	})
	return nil
}

// Clock advances the whole tree by one animation step.
func (m *Model) Clock() {
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}
	m.root.Move(m.width, m.height)
	if m.debug {
		m.stats.moveTime = time.Since(t0)
	}
}

// Paint paints the whole tree with p.
func (m *Model) Paint(p Painter) {
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}
	m.root.Paint(p)
	if m.debug {
		m.stats.paintTime = time.Since(t0)
		m.stats.shapeCount = countShapes(m.root)
		m.debugLog(m.stats)
	}
}

// AddListener registers l and returns a function that unregisters it. The
// function may be called from inside an Update.
func (m *Model) AddListener(l Listener) (remove func()) {
	m.nextListenerID++
	id := m.nextListenerID
	m.listeners = append(m.listeners, listenerEntry{id: id, l: l})
	return func() { m.removeListener(id) }
}

// removeListener replaces the slice instead of editing it in place, so a fire
// in progress keeps iterating the listeners it started with.
func (m *Model) removeListener(id uint32) {
	for i, e := range m.listeners {
		if e.id == id {
			m.listeners = slices.Delete(slices.Clone(m.listeners), i, i+1)
			return
		}
	}
}

func (m *Model) fire(event ModelEvent) {
	for _, e := range m.listeners {
		e.l.Update(event)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, rejected
// attachments are logged, tree depth and child count warnings are printed,
// and per-frame timing stats are logged to stderr.
func (m *Model) SetDebugMode(enabled bool) {
	m.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Model debug flag so that shape
// operations (which lack a Model pointer) can check it cheaply. Only valid
// with a single Model; multiple Models with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
