// Package scenefile reads shape scenes from TOML or YAML files and builds them
// into a [bounce.Model].
//
// A scene lists top-level shapes; nesting shapes list their own children:
//
//	width = 640
//	height = 480
//
//	[[shapes]]
//	kind = "nesting"
//	x = 20
//	y = 60
//	width = 220
//	height = 160
//
//	  [[shapes.children]]
//	  kind = "dynamic-rectangle"
//	  color = "#ff8000"
//
// Omitted geometry falls back to [bounce.DefaultConfig].
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/bounce"
)

var (
	// ErrUnknownFormat is returned by Load for a file extension other than
	// .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("scenefile: unknown file format")

	// ErrUnknownKind reports a shape entry whose kind is not recognized.
	ErrUnknownKind = errors.New("scenefile: unknown shape kind")

	// ErrBadColor reports a color that is neither a known name nor #rrggbb.
	ErrBadColor = errors.New("scenefile: bad color")

	// ErrChildrenNotAllowed reports children listed under a non-nesting shape.
	ErrChildrenNotAllowed = errors.New("scenefile: only nesting shapes have children")
)

// Format selects the encoding handed to Parse.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Shape kinds accepted in the kind field.
const (
	KindRectangle        = "rectangle"
	KindOval             = "oval"
	KindGem              = "gem"
	KindDynamicRectangle = "dynamic-rectangle"
	KindOvalAndRectangle = "oval-and-rectangle"
	KindNesting          = "nesting"
)

// Scene is the decoded form of a scene file. Width and Height are the world
// size a host should use; zero means the host picks.
type Scene struct {
	Width  int         `toml:"width" yaml:"width"`
	Height int         `toml:"height" yaml:"height"`
	Shapes []ShapeSpec `toml:"shapes" yaml:"shapes"`
}

// ShapeSpec describes one shape. Pointer fields are optional and default to
// the matching [bounce.DefaultConfig] value.
type ShapeSpec struct {
	Kind     string      `toml:"kind" yaml:"kind"`
	X        *int        `toml:"x" yaml:"x"`
	Y        *int        `toml:"y" yaml:"y"`
	DeltaX   *int        `toml:"dx" yaml:"dx"`
	DeltaY   *int        `toml:"dy" yaml:"dy"`
	Width    *int        `toml:"width" yaml:"width"`
	Height   *int        `toml:"height" yaml:"height"`
	Text     string      `toml:"text" yaml:"text"`
	Color    string      `toml:"color" yaml:"color"`
	Children []ShapeSpec `toml:"children" yaml:"children"`
}

// Load reads and parses the scene file at path. The format follows the file
// extension.
func Load(path string) (*Scene, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("load %s: %w", path, ErrUnknownFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	scene, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return scene, nil
}

// Parse decodes a scene in the given format. Unknown fields are errors.
func Parse(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document is an empty scene.
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse %v: %w", format, ErrUnknownFormat)
	}
	return &s, nil
}

// Model returns a new model of the scene's size with the scene's shapes
// added. A scene without a size uses the given fallback.
func (s *Scene) Model(fallbackWidth, fallbackHeight int) (*bounce.Model, error) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = fallbackWidth
	}
	if h <= 0 {
		h = fallbackHeight
	}
	m := bounce.NewModel(w, h)
	if _, err := s.Populate(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Populate builds the scene's shapes and adds them to m's root through
// m.Add, so listeners see one event per shape. All shapes are built before
// any is added, so kind and color errors leave m untouched. A shape that does
// not fit its parent stops population; shapes already added stay. The number
// of shapes added is returned.
func (s *Scene) Populate(m *bounce.Model) (int, error) {
	built := make([]builtShape, 0, len(s.Shapes))
	for i := range s.Shapes {
		b, err := s.Shapes[i].build(fmt.Sprintf("shapes[%d]", i))
		if err != nil {
			return 0, err
		}
		built = append(built, b)
	}

	added := 0
	for _, b := range built {
		n, err := b.addTo(m, m.Root())
		added += n
		if err != nil {
			return added, err
		}
	}
	return added, nil
}

// builtShape is a constructed shape with its constructed children, not yet
// attached to anything.
type builtShape struct {
	path     string
	shape    *bounce.Shape
	children []builtShape
}

func (b builtShape) addTo(m *bounce.Model, parent *bounce.Shape) (int, error) {
	if err := m.Add(b.shape, parent); err != nil {
		return 0, fmt.Errorf("%s: %w", b.path, err)
	}
	added := 1
	for _, c := range b.children {
		n, err := c.addTo(m, b.shape)
		added += n
		if err != nil {
			return added, err
		}
	}
	return added, nil
}

func (spec *ShapeSpec) build(path string) (builtShape, error) {
	cfg := spec.config()
	var shape *bounce.Shape

	switch spec.Kind {
	case KindRectangle:
		shape = bounce.NewRectangle(cfg)
	case KindOval:
		shape = bounce.NewOval(cfg)
	case KindGem:
		shape = bounce.NewGem(cfg)
	case KindDynamicRectangle:
		c, err := ParseColor(spec.Color)
		if err != nil {
			return builtShape{}, fmt.Errorf("%s: %w", path, err)
		}
		shape = bounce.NewDynamicRectangle(cfg, c)
	case KindOvalAndRectangle:
		shape = bounce.NewOvalAndRectangle(cfg)
	case KindNesting:
		shape = bounce.NewNesting(cfg)
	default:
		return builtShape{}, fmt.Errorf("%s: %w %q", path, ErrUnknownKind, spec.Kind)
	}

	b := builtShape{path: path, shape: shape}
	if len(spec.Children) == 0 {
		return b, nil
	}
	if spec.Kind != KindNesting {
		return builtShape{}, fmt.Errorf("%s: %w", path, ErrChildrenNotAllowed)
	}
	b.children = make([]builtShape, 0, len(spec.Children))
	for i := range spec.Children {
		c, err := spec.Children[i].build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return builtShape{}, err
		}
		b.children = append(b.children, c)
	}
	return b, nil
}

func (spec *ShapeSpec) config() bounce.Config {
	cfg := bounce.DefaultConfig()
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.X, spec.X)
	set(&cfg.Y, spec.Y)
	set(&cfg.DeltaX, spec.DeltaX)
	set(&cfg.DeltaY, spec.DeltaY)
	set(&cfg.Width, spec.Width)
	set(&cfg.Height, spec.Height)
	cfg.Text = spec.Text
	return cfg
}

var namedColors = map[string]bounce.Color{
	"black":   bounce.ColorBlack,
	"white":   bounce.ColorWhite,
	"red":     bounce.ColorRed,
	"orange":  bounce.ColorOrange,
	"yellow":  bounce.ColorYellow,
	"green":   bounce.ColorGreen,
	"cyan":    bounce.ColorCyan,
	"blue":    bounce.ColorBlue,
	"magenta": bounce.ColorMagenta,
}

// ParseColor accepts a color name such as "orange" or a "#rrggbb" hex value.
// The empty string is black.
func ParseColor(s string) (bounce.Color, error) {
	if s == "" {
		return bounce.ColorBlack, nil
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return bounce.Color{}, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return bounce.Color{}, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	return bounce.Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}
