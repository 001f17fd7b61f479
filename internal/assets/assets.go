// Package assets loads named image assets from a bundle, scales them
// to cell dimensions, and renders them as half-block terminal graphics.
// Decoded-and-scaled images are kept in a bounded LRU cache keyed by
// name and target size.
package assets

import (
	"fmt"
	"image"
	"io/fs"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"charm.land/lipgloss/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
)

const defaultCacheSize = 64

// Registry resolves asset names against a bundle filesystem.
type Registry struct {
	bundle fs.FS
	cache  *lru.Cache[string, image.Image]
}

// Option configures a Registry.
type Option func(*Registry) error

// WithCacheSize bounds the scaled-image cache to n entries.
func WithCacheSize(n int) Option {
	return func(r *Registry) error {
		cache, err := lru.New[string, image.Image](n)
		if err != nil {
			return fmt.Errorf("failed to create asset cache: %w", err)
		}
		r.cache = cache
		return nil
	}
}

// NewRegistry creates a registry over the given bundle filesystem.
func NewRegistry(bundle fs.FS, opts ...Option) (*Registry, error) {
	cache, err := lru.New[string, image.Image](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset cache: %w", err)
	}
	r := &Registry{bundle: bundle, cache: cache}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Load decodes the named asset. PNG and JPEG are supported; the format
// is sniffed from the stream, not the extension.
func (r *Registry) Load(name string) (image.Image, error) {
	f, err := r.bundle.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %q: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset %q: %w", name, err)
	}
	return img, nil
}

// Scaled returns the named asset scaled to width x height pixels,
// preserving aspect ratio and centering on a transparent canvas.
// Results are cached.
func (r *Registry) Scaled(name string, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d for asset %q", width, height, name)
	}
	key := fmt.Sprintf("%s@%dx%d", name, width, height)
	if img, ok := r.cache.Get(key); ok {
		return img, nil
	}

	src, err := r.Load(name)
	if err != nil {
		return nil, err
	}

	dst := scaleInto(src, width, height)
	r.cache.Add(key, dst)
	return dst, nil
}

// CacheLen returns the number of cached scaled images.
func (r *Registry) CacheLen() int {
	return r.cache.Len()
}

// Purge drops every cached scaled image.
func (r *Registry) Purge() {
	r.cache.Purge()
}

// scaleInto letterboxes src into a width x height canvas using
// bilinear scaling.
func scaleInto(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	srcBounds := src.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()
	if srcW == 0 || srcH == 0 {
		return dst
	}

	scale := min(float64(width)/float64(srcW), float64(height)/float64(srcH))
	scaledW := int(float64(srcW) * scale)
	scaledH := int(float64(srcH) * scale)
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}

	xBase := (width - scaledW) / 2
	yBase := (height - scaledH) / 2
	targetRect := image.Rect(xBase, yBase, xBase+scaledW, yBase+scaledH)

	draw.ApproxBiLinear.Scale(dst, targetRect, src, srcBounds, draw.Over, nil)
	return dst
}

// RenderCells renders img as terminal half-block graphics sized
// cols x rows cells. Each cell shows two vertically stacked pixels via
// the upper-half-block glyph with independent foreground and
// background colors.
func (r *Registry) RenderCells(name string, cols, rows int) (string, error) {
	img, err := r.Scaled(name, cols, rows*2)
	if err != nil {
		return "", err
	}
	return renderHalfBlocks(img, cols, rows), nil
}

func renderHalfBlocks(img image.Image, cols, rows int) string {
	bounds := img.Bounds()
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := img.At(bounds.Min.X+col, bounds.Min.Y+row*2)
			bottom := img.At(bounds.Min.X+col, bounds.Min.Y+row*2+1)
			style := lipgloss.NewStyle().
				Foreground(top).
				Background(bottom)
			b.WriteString(style.Render("▀"))
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
