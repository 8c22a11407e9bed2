package bounce

import "testing"

// setupBenchModel creates a model with n moving shapes of mixed kinds spread
// over a 1280x720 world, half of them inside nesting shapes.
func setupBenchModel(n int) *Model {
	m := NewModel(1280, 720)
	root := m.Root()
	var nest *Shape
	for i := 0; i < n; i++ {
		cfg := DefaultConfig().At(i%20*25, i/20%20*25).Moving(i%7+1, i%5+1).Sized(20, 20)
		var s *Shape
		switch i % 5 {
		case 0:
			s = NewRectangle(cfg)
		case 1:
			s = NewOval(cfg)
		case 2:
			s = NewGem(cfg)
		case 3:
			s = NewDynamicRectangle(cfg, ColorBlue)
		default:
			s = NewOvalAndRectangle(cfg)
		}
		if i%100 == 0 {
			nest = NewNesting(DefaultConfig().At(i/100%16*40, 0).Moving(1, 1).Sized(600, 600))
			_ = m.Add(nest, root)
		}
		parent := root
		if i%2 == 0 {
			parent = nest
		}
		_ = m.Add(s, parent)
	}
	return m
}

// --- Animation Benchmarks ---

func BenchmarkClock_10000Shapes(b *testing.B) {
	m := setupBenchModel(10000)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Clock()
	}
}

func BenchmarkPaint_10000Shapes(b *testing.B) {
	m := setupBenchModel(10000)
	p := NewLogPainter()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Reset()
		m.Paint(p)
	}
}

func BenchmarkAnimatorUpdate(b *testing.B) {
	a := NewAnimator(setupBenchModel(1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Update(1.0 / 60)
	}
}
