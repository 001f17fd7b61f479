// Package input implements tuikit demo input handling.
//
// It routes keyboard and mouse messages to the reorder controller and
// the application overlays. The app package delegates here through a
// registered handler to avoid a circular dependency.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/tuikit/internal/app"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, a *app.App) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return handleKeyPress(msg, a)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, a)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, a)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, a)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, a)
	}
	return a, nil
}
