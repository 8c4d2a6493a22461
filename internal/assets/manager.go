// Package assets reads the splash images and reports their natural sizes.
// It decodes into image.Image; uploading to the GPU is the renderer's job.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/webp" // Register WebP format

	"nights/internal/layout"
)

// ErrNotFound is returned when an asset file does not exist.
var ErrNotFound = errors.New("assets: not found")

// Asset is a decoded image and its natural size. Image is nil for a
// placeholder standing in for a file that could not be loaded.
type Asset struct {
	Name  string
	Image image.Image
	Size  layout.Size
}

// Missing reports whether the asset is a placeholder.
func (a *Asset) Missing() bool {
	return a.Image == nil
}

// Manager loads assets from a file system, usually os.DirFS(assets.dir).
type Manager struct {
	fsys   fs.FS
	logger *zap.Logger
}

func NewManager(fsys fs.FS, logger *zap.Logger) *Manager {
	return &Manager{fsys: fsys, logger: logger.Named("assets")}
}

// Load decodes the named image.
func (m *Manager) Load(name string) (*Asset, error) {
	data, err := m.read(name)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", name, err)
	}
	b := img.Bounds()
	m.logger.Debug("Loaded image",
		zap.String("name", name),
		zap.String("format", format),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))
	return &Asset{Name: name, Image: img, Size: layout.Size{Width: b.Dx(), Height: b.Dy()}}, nil
}

// Probe reads only the image header and returns the natural size.
func (m *Manager) Probe(name string) (layout.Size, error) {
	data, err := m.read(name)
	if err != nil {
		return layout.Size{}, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return layout.Size{}, fmt.Errorf("failed to decode image header %q: %w", name, err)
	}
	return layout.Size{Width: cfg.Width, Height: cfg.Height}, nil
}

// LoadOrPlaceholder loads the named image. On failure it logs a warning and
// returns a placeholder with the fallback size and no image, so the slot
// still takes up room in the layout but nothing gets drawn there. A zero
// fallback makes the slot invalid and the layout skips it.
func (m *Manager) LoadOrPlaceholder(name string, fallback layout.Size) *Asset {
	a, err := m.Load(name)
	if err != nil {
		m.logger.Warn("Using placeholder for image",
			zap.String("name", name),
			zap.Stringer("fallback", fallback),
			zap.Error(err))
		return &Asset{Name: name, Size: fallback}
	}
	return a
}

// LoadAll loads every name with LoadOrPlaceholder, keeping order.
func (m *Manager) LoadAll(names []string, fallback layout.Size) []*Asset {
	out := make([]*Asset, 0, len(names))
	for _, name := range names {
		out = append(out, m.LoadOrPlaceholder(name, fallback))
	}
	return out
}

// Sizes returns the natural sizes of the assets, in order.
func Sizes(list []*Asset) []layout.Size {
	out := make([]layout.Size, len(list))
	for i, a := range list {
		out[i] = a.Size
	}
	return out
}

func (m *Manager) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(m.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image %q: %w", name, err)
	}
	return data, nil
}
