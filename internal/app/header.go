package app

import (
	"embed"
	"sync"

	"github.com/dodorz/tuikit/internal/assets"
)

//go:embed logo.png
var bundledAssets embed.FS

var (
	headerOnce sync.Once
	headerArt  string
)

// HeaderArt returns the demo logo rendered as half-block cells. The
// render is cached for the life of the process; decode failures yield
// an empty header.
func HeaderArt() string {
	headerOnce.Do(func() {
		reg, err := assets.NewRegistry(bundledAssets)
		if err != nil {
			return
		}
		art, err := reg.RenderCells("logo.png", 24, 4)
		if err != nil {
			return
		}
		headerArt = art
	})
	return headerArt
}
