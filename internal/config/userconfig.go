package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Reorder    ReorderConfig    `toml:"reorder"`
	Media      MediaConfig      `toml:"media"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme      string `toml:"theme"`       // Color theme name (e.g., dracula, nord, my-custom-theme). Empty disables theming.
	ListHeight int    `toml:"list_height"` // Visible height of the demo list in rows (default: 12, min: 3, max: 200)
}

// ReorderConfig holds drag-to-reorder settings
type ReorderConfig struct {
	Enabled        *bool   `toml:"enabled"`         // Enable the drag-to-reorder recognizer (default: true)
	PreviewOpacity float64 `toml:"preview_opacity"` // Drag preview transparency, 0 to 1 (default: 0.85)
}

// MediaConfig holds media bar settings
type MediaConfig struct {
	HideBar bool `toml:"hide_bar"` // Hide the playback bar (default: false)
	Repeat  bool `toml:"repeat"`   // Wrap playback back to the start at the end (default: false)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:      "",
			ListHeight: DefaultListHeight,
		},
		Reorder: ReorderConfig{
			PreviewOpacity: DefaultPreviewOpacity,
		},
		Media: MediaConfig{},
	}
}

// LoadConfig loads the user configuration, creating a default config
// file on first run. Missing fields are filled with defaults; fields
// outside their valid range are clamped.
func LoadConfig() (*UserConfig, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	data, err := os.ReadFile(configPath) // #nosec G304 - path comes from XDG config resolution
	if errors.Is(err, fs.ErrNotExist) {
		return createDefaultConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	fillMissing(&cfg)
	return &cfg, nil
}

// SaveConfig writes cfg to the user's config file.
func SaveConfig(cfg *UserConfig) error {
	configPath, err := xdg.ConfigFile("tuikit/config.toml")
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ResetConfig replaces the user's config file with the defaults.
func ResetConfig() error {
	_, err := createDefaultConfig()
	return err
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile("tuikit/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	// Build config file with header comments and marshaled data
	var sb strings.Builder
	sb.WriteString("# tuikit Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/tuikit/themes/*.json\n")
	sb.WriteString("#   Default: (empty - no theme)\n")
	sb.WriteString("#\n")
	sb.WriteString("# list_height: Visible height of the demo list in rows\n")
	sb.WriteString("#   Range: 3 to 200\n")
	sb.WriteString("#   Default: 12\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# REORDER SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# enabled: Enable drag-to-reorder on the list\n")
	sb.WriteString("#   Default: true\n")
	sb.WriteString("#\n")
	sb.WriteString("# preview_opacity: Transparency of the floating drag preview\n")
	sb.WriteString("#   Range: 0.0 (invisible) to 1.0 (opaque)\n")
	sb.WriteString("#   Default: 0.85\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# MEDIA SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# hide_bar: Hide the playback bar\n")
	sb.WriteString("#   Default: false\n")
	sb.WriteString("#\n")
	sb.WriteString("# repeat: Wrap playback back to the start at the end\n")
	sb.WriteString("#   Default: false\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissing fills zero-valued settings with defaults and clamps
// out-of-range values.
func fillMissing(cfg *UserConfig) {
	if cfg.Appearance.ListHeight <= 0 {
		cfg.Appearance.ListHeight = DefaultListHeight
	} else if cfg.Appearance.ListHeight < 3 {
		cfg.Appearance.ListHeight = 3
	} else if cfg.Appearance.ListHeight > 200 {
		cfg.Appearance.ListHeight = 200
	}

	if cfg.Reorder.PreviewOpacity <= 0 {
		cfg.Reorder.PreviewOpacity = DefaultPreviewOpacity
	} else if cfg.Reorder.PreviewOpacity > 1 {
		cfg.Reorder.PreviewOpacity = 1
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("tuikit/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("tuikit/config.toml")
	}
	return path, nil
}
