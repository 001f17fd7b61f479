// Package config provides configuration constants, user settings, and
// CLI flag overrides for tuikit.
package config

import "time"

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the refresh rate of the demo application update loop.
	NormalFPS = 60

	// InteractionFPS is the refresh rate while a drag session is live.
	// Lower FPS during interactions improves mouse responsiveness.
	InteractionFPS = 30

	// ReorderTickInterval is the period of the auto-scroll ticker,
	// matching a 60 Hz display refresh signal.
	ReorderTickInterval = time.Second / 60
)

// =============================================================================
// Drag Reorder Tunables
// =============================================================================

const (
	// AutoScrollStep is the offset applied per tick at full scroll rate.
	AutoScrollStep = 10.0

	// ScrollZoneDivisor divides the visible height to obtain the height
	// of the top and bottom auto-scroll activation zones.
	ScrollZoneDivisor = 6.0

	// PreviewOverdrag is the slack below the content bottom within which
	// the floating preview center may still be positioned. Prevents
	// runaway preview positions on wild pointer coordinates.
	PreviewOverdrag = 50.0

	// DropSettleDuration is how long the preview takes to settle onto
	// the target row after the press ends.
	DropSettleDuration = 300 * time.Millisecond

	// DefaultPreviewOpacity is the default transparency of the floating
	// drag preview (0 invisible, 1 opaque).
	DefaultPreviewOpacity = 0.85
)

// =============================================================================
// Notifications and Logging
// =============================================================================

const (
	// NotificationDuration is the default duration notifications remain visible.
	NotificationDuration = 1500 * time.Millisecond

	// MaxLogMessages is the maximum number of in-app log lines retained.
	MaxLogMessages = 500
)

// =============================================================================
// Demo List Defaults
// =============================================================================

const (
	// DefaultRowHeight is the height of a demo list row in cells.
	DefaultRowHeight = 1

	// DefaultListHeight is the visible height of the demo list in cells.
	DefaultListHeight = 12
)

// Runtime configuration, set from user config and CLI flags at startup.
var (
	// ThemeName is the active color theme. Empty disables theming.
	ThemeName = ""

	// PreviewOpacity is the drag preview transparency in use.
	PreviewOpacity = DefaultPreviewOpacity

	// ReorderEnabled toggles the drag-to-reorder recognizer globally.
	ReorderEnabled = true

	// HideMediaBar hides the playback bar in the demo application.
	HideMediaBar = false

	// MediaRepeat wraps playback back to the start at the end.
	MediaRepeat = false

	// ListHeight is the visible height of the demo list in rows.
	ListHeight = DefaultListHeight
)
