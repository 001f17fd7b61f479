package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// ThemesDir returns the user theme directory
// (~/.config/tuikit/themes/), creating it if needed.
func ThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("tuikit/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to resolve themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadUserThemes registers every *.json theme found in dir with the
// tint registry and returns the registered IDs. A malformed file is
// skipped with a warning; it never fails startup.
func LoadUserThemes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		t, err := ParseThemeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Printf("Warning: skipping custom theme %s: %v", entry.Name(), err)
			continue
		}
		tint.Register(t)
		ids = append(ids, t.ID)
	}
	return ids, nil
}

// ParseThemeFile decodes one theme JSON file. A missing id falls back
// to the lowercased file name; missing colors get xterm defaults.
func ParseThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path comes from the user's own config directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		name := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	}
	if t.ID == "" {
		return nil, fmt.Errorf("theme has no ID")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	applyColorDefaults(&t)
	return &t, nil
}

// applyColorDefaults fills nil color fields: base colors get xterm
// values, the cursor tracks the foreground, and bright variants track
// their normal counterparts.
func applyColorDefaults(t *tint.Tint) {
	base := []struct {
		dst **tint.Color
		hex string
	}{
		{&t.Fg, "#e5e5e5"},
		{&t.Bg, "#000000"},
		{&t.Black, "#000000"},
		{&t.Red, "#cd0000"},
		{&t.Green, "#00cd00"},
		{&t.Yellow, "#cdcd00"},
		{&t.Blue, "#0000ee"},
		{&t.Purple, "#cd00cd"},
		{&t.Cyan, "#00cdcd"},
		{&t.White, "#e5e5e5"},
	}
	for _, c := range base {
		if *c.dst == nil {
			*c.dst = tint.FromHex(c.hex)
		}
	}

	if t.Cursor == nil {
		t.Cursor = cloneColor(t.Fg)
	}

	bright := []struct {
		dst **tint.Color
		src *tint.Color
	}{
		{&t.BrightBlack, t.Black},
		{&t.BrightRed, t.Red},
		{&t.BrightGreen, t.Green},
		{&t.BrightYellow, t.Yellow},
		{&t.BrightBlue, t.Blue},
		{&t.BrightPurple, t.Purple},
		{&t.BrightCyan, t.Cyan},
		{&t.BrightWhite, t.White},
	}
	for _, c := range bright {
		if *c.dst == nil {
			*c.dst = cloneColor(c.src)
		}
	}
}

func cloneColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
