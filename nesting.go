package bounce

import "fmt"

// --- Tree manipulation ---

// Add appends child to this nesting shape's children and makes s its parent.
// child must not already have a parent, must not be an ancestor of s, and its
// box must fit inside s's box in s's local frame. On error nothing changes.
func (s *Shape) Add(child *Shape) error {
	if child == nil {
		return fmt.Errorf("add nil child to %v: %w", s, ErrInvalidAttachment)
	}
	if s.kind != KindNesting {
		return fmt.Errorf("add %v to %v: not a nesting shape: %w", child, s, ErrInvalidAttachment)
	}
	if child.parent != nil || s.Contains(child) {
		return fmt.Errorf("add %v to %v: already a child of %v: %w", child, s, child.parent, ErrInvalidAttachment)
	}
	if isAncestor(child, s) {
		return fmt.Errorf("add %v to %v: would create a cycle: %w", child, s, ErrInvalidAttachment)
	}
	if !child.Bounds().Fits(s.width, s.height) {
		return fmt.Errorf("add %v at %v to %v sized %dx%d: %w",
			child, child.Bounds(), s, s.width, s.height, ErrOutOfBounds)
	}
	s.children = append(s.children, child)
	child.parent = s
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(s)
	}
	return nil
}

// Remove detaches child from this nesting shape and clears its parent.
func (s *Shape) Remove(child *Shape) error {
	i := s.IndexOf(child)
	if i < 0 {
		return fmt.Errorf("remove %v from %v: %w", child, s, ErrNotFound)
	}
	s.removeChildAt(i)
	return nil
}

// removeChildAt drops the child at index i and clears its parent. Uses
// copy+nil to avoid retaining a dangling pointer in the backing array.
func (s *Shape) removeChildAt(i int) *Shape {
	child := s.children[i]
	copy(s.children[i:], s.children[i+1:])
	s.children[len(s.children)-1] = nil
	s.children = s.children[:len(s.children)-1]
	child.parent = nil
	return child
}

// --- Queries ---

// ShapeAt returns the child at the given index.
func (s *Shape) ShapeAt(index int) (*Shape, error) {
	if index < 0 || index >= len(s.children) {
		return nil, fmt.Errorf("shape at %d of %d in %v: %w", index, len(s.children), s, ErrIndexOutOfRange)
	}
	return s.children[index], nil
}

// ShapeCount returns the number of children.
func (s *Shape) ShapeCount() int {
	return len(s.children)
}

// IndexOf returns the position of child among the children, or -1.
func (s *Shape) IndexOf(child *Shape) int {
	for i, c := range s.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Contains reports whether child is a direct child of s.
func (s *Shape) Contains(child *Shape) bool {
	return s.IndexOf(child) >= 0
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (s *Shape) Children() []*Shape {
	return s.children
}

// --- Painting ---

// drawNesting outlines the container in its parent's frame, then paints the
// children back to front in the container's own frame.
func (s *Shape) drawNesting(p Painter) {
	p.DrawRect(s.x, s.y, s.width, s.height)
	withTranslation(p, s.x, s.y, func() {
		for _, child := range s.children {
			child.Paint(p)
		}
	})
}

// withTranslation shifts p's origin by (dx, dy) for the duration of fn. The
// origin is restored on every exit path, including a panic inside fn.
func withTranslation(p Painter, dx, dy int, fn func()) {
	p.Translate(dx, dy)
	defer p.Translate(-dx, -dy)
	fn()
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Shape) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
