// Package tuikit provides TUI list extensions that can be embedded in
// other Bubble Tea applications or run as a standalone demo: a
// drag-to-reorder controller for scrollable lists, the list widget it
// drives, and playback and environment helpers for the demo chrome.
//
// # Basic Usage
//
// Create the demo model with default options:
//
//	model := tuikit.New(items)
//	p := tea.NewProgram(model)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize behavior:
//
//	model := tuikit.New(items,
//		tuikit.WithTheme("dracula"),
//		tuikit.WithPreviewOpacity(0.7),
//		tuikit.WithReorder(false),
//	)
//
// # Embedding the controller
//
// The reorder controller can be attached to any widget implementing
// the Host interface:
//
//	ctrl := tuikit.NewReorder(myList, tuikit.DataSource{
//		BeginReorder:  begin,
//		FinishReorder: finish,
//		Move:          move,
//	})
package tuikit

import (
	"github.com/dodorz/tuikit/internal/app"
	"github.com/dodorz/tuikit/internal/config"
	"github.com/dodorz/tuikit/internal/input"
	"github.com/dodorz/tuikit/internal/listview"
	"github.com/dodorz/tuikit/internal/reorder"
	"github.com/dodorz/tuikit/internal/theme"
)

// Model is the demo application model that implements tea.Model.
type Model = app.App

// Item is one list entry.
type Item = listview.Item

// List is the scrollable list widget.
type List = listview.List

// Reorder types, re-exported for embedding the controller in other
// widgets.
type (
	// Controller is the drag-to-reorder gesture state machine.
	Controller = reorder.Controller

	// Host is the capability set a widget offers the controller.
	Host = reorder.Host

	// DataSource holds the reorder callbacks.
	DataSource = reorder.DataSource

	// Point is a position in list content coordinates.
	Point = reorder.Point

	// Rect is a rectangle in list content coordinates.
	Rect = reorder.Rect
)

// NewReorder creates a reorder controller attached to host.
func NewReorder(host Host, source DataSource) *Controller {
	return reorder.New(host, source)
}

// Options configures a tuikit demo instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord").
	// Leave empty to use standard terminal colors.
	Theme string

	// PreviewOpacity is the drag preview transparency, 0 to 1.
	// Zero means the default.
	PreviewOpacity float64

	// Reorder enables the drag-to-reorder recognizer.
	Reorder bool

	// HideMediaBar hides the playback bar.
	HideMediaBar bool

	// ListHeight is the visible list height in rows (0 uses default).
	ListHeight int

	// UserConfig is a custom user configuration. If nil, defaults are used.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring tuikit.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithPreviewOpacity sets the drag preview transparency.
func WithPreviewOpacity(opacity float64) Option {
	return func(o *Options) {
		if opacity < 0 {
			opacity = 0
		} else if opacity > 1 {
			opacity = 1
		}
		o.PreviewOpacity = opacity
	}
}

// WithReorder enables or disables drag-to-reorder.
func WithReorder(enabled bool) Option {
	return func(o *Options) {
		o.Reorder = enabled
	}
}

// WithHideMediaBar hides the playback bar.
func WithHideMediaBar(hide bool) Option {
	return func(o *Options) {
		o.HideMediaBar = hide
	}
}

// WithListHeight sets the visible list height in rows.
func WithListHeight(rows int) Option {
	return func(o *Options) {
		if rows < 3 {
			rows = 3
		} else if rows > 200 {
			rows = 200
		}
		o.ListHeight = rows
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Reorder: true,
	}
}

// New creates a new demo model with the given items and options.
// This is the main entry point for using tuikit as a library.
func New(items []Item, opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(items, options)
}

// newModel creates the internal model with applied options.
func newModel(items []Item, options Options) *Model {
	// Set up input handler
	app.SetInputHandler(input.HandleInput)

	config.ApplyOverrides(config.Overrides{
		ThemeName:      options.Theme,
		PreviewOpacity: options.PreviewOpacity,
		NoReorder:      !options.Reorder,
		HideMediaBar:   options.HideMediaBar,
		ListHeight:     options.ListHeight,
	}, options.UserConfig)

	return app.New(items)
}

// AvailableThemes returns the registered theme IDs, or nil when
// theming is disabled.
func AvailableThemes() []string {
	return theme.AvailableThemes()
}
