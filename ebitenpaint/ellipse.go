package ebitenpaint

import "math"

const (
	minEllipseSegments = 12
	maxEllipseSegments = 128
)

// ellipseSegments picks a segment count that keeps each edge a few pixels
// long.
func ellipseSegments(width, height float32) int {
	n := int((width + height) / 2)
	return max(minEllipseSegments, min(n, maxEllipseSegments))
}

// ellipsePoints appends the outline of the ellipse inscribed in the box
// (x, y, width, height) to dst, clockwise from three o'clock. The outline is
// open; the last point does not repeat the first.
func ellipsePoints(dst [][2]float32, x, y, width, height float32) [][2]float32 {
	rx, ry := width/2, height/2
	cx, cy := x+rx, y+ry
	n := ellipseSegments(width, height)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		dst = append(dst, [2]float32{
			cx + rx*float32(math.Cos(a)),
			cy + ry*float32(math.Sin(a)),
		})
	}
	return dst
}

// fanIndices returns triangle indices for a convex polygon of n vertices,
// fanning out from vertex 0.
func fanIndices(dst []uint16, n int) []uint16 {
	for i := 1; i+1 < n; i++ {
		dst = append(dst, 0, uint16(i), uint16(i+1))
	}
	return dst
}
