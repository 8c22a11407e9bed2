package ebitenpaint

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"hello world", "hello_world"},
		{"a/b\\c:d", "a_b_c_d"},
		{"", "unlabeled"},
		{"  ", "unlabeled"},
		{"test-1.0", "test-1.0"},
		{"special!@#$%", "special_____"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	var s screenshotter
	s.Screenshot("first")
	s.Screenshot("second")
	if len(s.queue) != 2 || s.queue[0] != "first" || s.queue[1] != "second" {
		t.Errorf("queue = %v", s.queue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-transparent
		0, 0, 0, 0, // clear
	}
	img := unpremultiply(pixels, 3, 1)
	if got := img.NRGBAAt(0, 0); got.R != 255 || got.A != 255 {
		t.Errorf("opaque = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got.R != 127 || got.G != 63 || got.A != 128 {
		t.Errorf("translucent = %v, want {127 63 0 128}", got)
	}
	if got := img.NRGBAAt(2, 0); got.A != 0 {
		t.Errorf("clear = %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	if err := writePNG(path, src); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}
