package config

import (
	"log"

	"github.com/dodorz/tuikit/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ThemeName is the theme to load
	ThemeName string

	// PreviewOpacity overrides the drag preview transparency (0 means use default)
	PreviewOpacity float64

	// NoReorder disables the drag-to-reorder recognizer
	NoReorder bool

	// HideMediaBar hides the playback bar
	HideMediaBar bool

	// ListHeight overrides the visible list height (0 means use default)
	ListHeight int
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// Preview opacity - CLI flag takes precedence, otherwise use user config
	if overrides.PreviewOpacity > 0 {
		opacity := overrides.PreviewOpacity
		if opacity > 1 {
			opacity = 1
		}
		PreviewOpacity = opacity
	} else if userConfig != nil && userConfig.Reorder.PreviewOpacity > 0 {
		PreviewOpacity = userConfig.Reorder.PreviewOpacity
	}

	// Reorder enabled - flag disables, otherwise user config decides
	if overrides.NoReorder {
		ReorderEnabled = false
	} else if userConfig != nil && userConfig.Reorder.Enabled != nil {
		ReorderEnabled = *userConfig.Reorder.Enabled
	}

	// Media bar - OR of CLI flag and user config
	if userConfig != nil {
		HideMediaBar = overrides.HideMediaBar || userConfig.Media.HideBar
	} else {
		HideMediaBar = overrides.HideMediaBar
	}

	// Playback repeat has no CLI flag; the user config decides
	if userConfig != nil {
		MediaRepeat = userConfig.Media.Repeat
	}

	// List height - CLI flag takes precedence, otherwise use user config
	if overrides.ListHeight > 0 {
		height := overrides.ListHeight
		if height < 3 {
			height = 3
		} else if height > 200 {
			height = 200
		}
		ListHeight = height
	} else if userConfig != nil && userConfig.Appearance.ListHeight > 0 {
		ListHeight = userConfig.Appearance.ListHeight
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	ThemeName = themeName
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
