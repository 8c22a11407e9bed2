package bounce

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"runtime"
	"sync"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// maxPendingImages is the number of decoded shapes that may wait for Drain
// before further decoders block.
const maxPendingImages = 64

// ImageRequest describes an image shape to load in the background.
type ImageRequest struct {
	// Path names the image file within the loader's file system.
	Path string

	// Width is the widest the shape may be. Wider images are scaled down to
	// this width, preserving aspect ratio. Zero keeps the original size.
	Width int

	DeltaX, DeltaY int

	// Parent is the nesting shape to attach to. Nil means the model root.
	Parent *Shape
}

type imageResult struct {
	req ImageRequest
	img image.Image
}

// ImageLoader decodes and scales images off the owning goroutine and hands the
// finished images back through a channel. Shapes are created and attached only
// by Drain and LoadAll, which must be called from the goroutine that owns the
// model.
//
// A failed load is logged and never produces a shape.
type ImageLoader struct {
	model   *Model
	fsys    fs.FS
	results chan imageResult
	wg      sync.WaitGroup
}

// NewImageLoader creates a loader that reads files from fsys and attaches the
// resulting shapes to m.
func NewImageLoader(m *Model, fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		model:   m,
		fsys:    fsys,
		results: make(chan imageResult, maxPendingImages),
	}
}

// Load starts decoding req in the background. The shape is attached by a
// later call to Drain.
func (l *ImageLoader) Load(req ImageRequest) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := l.decode(req)
		if err != nil {
			log.Printf("bounce: %v", err)
			return
		}
		l.results <- imageResult{req: req, img: img}
	}()
}

// Wait blocks until every decode started by Load has finished. With more than
// maxPendingImages undrained results it would block forever; hosts normally
// call Drain once per frame instead.
func (l *ImageLoader) Wait() {
	l.wg.Wait()
}

// Drain attaches every shape decoded so far and returns how many were
// attached. It never blocks.
func (l *ImageLoader) Drain() int {
	attached := 0
	for {
		select {
		case r := <-l.results:
			if l.attach(r) {
				attached++
			}
		default:
			return attached
		}
	}
}

// LoadAll decodes reqs concurrently, bounded by the number of CPUs, then
// attaches the shapes in request order. It returns the number attached, or
// ctx's error if ctx was canceled before decoding finished.
func (l *ImageLoader) LoadAll(ctx context.Context, reqs []ImageRequest) (int, error) {
	images := make([]image.Image, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := l.decode(req)
			if err != nil {
				log.Printf("bounce: %v", err)
				return nil
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	attached := 0
	for i, img := range images {
		if img != nil && l.attach(imageResult{req: reqs[i], img: img}) {
			attached++
		}
	}
	return attached, nil
}

// attach wraps a decoded image in a shape and adds it to the model. It runs on
// the owning goroutine, as does every shape constructor.
func (l *ImageLoader) attach(r imageResult) bool {
	parent := r.req.Parent
	if parent == nil {
		parent = l.model.Root()
	}
	shape := NewImageRectangle(r.req.DeltaX, r.req.DeltaY, r.img)
	if err := l.model.Add(shape, parent); err != nil {
		log.Printf("bounce: attach image %s: %v", r.req.Path, err)
		return false
	}
	return true
}

// decode reads, sniffs, decodes and scales one image. It touches no shape and
// is safe to run on any goroutine. Files whose content is not a known image
// type are rejected before decoding.
func (l *ImageLoader) decode(req ImageRequest) (image.Image, error) {
	f, err := l.fsys.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", req.Path, err)
	}
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("load image %s: %w", req.Path, ErrUnsupportedImage)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", req.Path, err)
	}
	return scaleToWidth(img, req.Width), nil
}

// scaleToWidth shrinks img to width pixels wide, preserving aspect ratio. Images
// already narrow enough, and a non-positive width, return img unchanged.
func scaleToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || b.Dx() <= width {
		return img
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
