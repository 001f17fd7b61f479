// Package input: mouse event handling for the reorderable list.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/tuikit/internal/app"
	"github.com/dodorz/tuikit/internal/reorder"
)

// handleMouseClick starts a drag session when the left button goes
// down on a list row.
func handleMouseClick(msg tea.MouseClickMsg, a *app.App) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return a, nil
	}

	p, ok := a.ListPoint(mouse.X, mouse.Y)
	if !ok {
		return a, nil
	}

	cmd := a.Reorder.PressBegan(p)
	if cmd != nil {
		a.InteractionMode = true
	}
	return a, cmd
}

// handleMouseMotion tracks the pointer during a live drag. Coordinates
// outside the viewport are still forwarded: the controller clamps the
// preview and drives the auto-scroll zones from them.
func handleMouseMotion(msg tea.MouseMotionMsg, a *app.App) (tea.Model, tea.Cmd) {
	if !a.Reorder.Dragging() {
		return a, nil
	}
	mouse := msg.Mouse()
	a.Reorder.PressChanged(contentPoint(a, mouse.X, mouse.Y))
	return a, nil
}

// handleMouseRelease drops the dragged row.
func handleMouseRelease(msg tea.MouseReleaseMsg, a *app.App) (tea.Model, tea.Cmd) {
	if !a.Reorder.Dragging() {
		return a, nil
	}
	mouse := msg.Mouse()
	return a, a.Reorder.PressEnded(contentPoint(a, mouse.X, mouse.Y))
}

// handleMouseWheel scrolls the list, or the log overlay when open.
func handleMouseWheel(msg tea.MouseWheelMsg, a *app.App) (tea.Model, tea.Cmd) {
	if a.ShowLogs {
		switch msg.Button {
		case tea.MouseWheelUp:
			if a.LogScrollOffset > 0 {
				a.LogScrollOffset--
			}
		case tea.MouseWheelDown:
			if a.LogScrollOffset < len(a.LogMessages)-1 {
				a.LogScrollOffset++
			}
		}
		return a, nil
	}

	// Scrolling during a drag would fight the auto-scroll ticker.
	if a.Reorder.Dragging() {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseWheelUp:
		a.List.ScrollBy(-3)
	case tea.MouseWheelDown:
		a.List.ScrollBy(3)
	}
	return a, nil
}

// contentPoint converts screen coordinates to list content
// coordinates without the viewport bounds check, for events that must
// be delivered even when the pointer leaves the list.
func contentPoint(a *app.App, x, y int) reorder.Point {
	if pt, ok := a.ListPoint(x, y); ok {
		return pt
	}
	return reorder.Point{
		X: float64(x-a.ListLeft) + 0.5,
		Y: float64(y-a.ListTop) + 0.5 + a.List.ScrollOffset(),
	}
}
