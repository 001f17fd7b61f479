// Package input: keyboard handling for the demo application.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/tuikit/internal/app"
	"github.com/dodorz/tuikit/internal/config"
	"github.com/dodorz/tuikit/internal/theme"
)

func handleKeyPress(msg tea.KeyPressMsg, a *app.App) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		a.Reorder.Cancel()
		return a, tea.Quit

	case "esc":
		switch {
		case a.Reorder.Dragging():
			a.Reorder.Cancel()
			a.InteractionMode = false
		case a.ShowEnv:
			a.ShowEnv = false
		case a.ShowLogs:
			a.ShowLogs = false
		case a.ShowHelp:
			a.ShowHelp = false
		}
		return a, nil

	case "e":
		a.ShowEnv = !a.ShowEnv
		a.ShowLogs = false
		a.ShowHelp = false
		return a, nil

	case "L":
		a.ShowLogs = !a.ShowLogs
		a.ShowEnv = false
		a.ShowHelp = false
		return a, nil

	case "?":
		a.ShowHelp = !a.ShowHelp
		a.ShowEnv = false
		a.ShowLogs = false
		return a, nil

	case "r":
		a.Reorder.Enabled = !a.Reorder.Enabled
		state := "enabled"
		if !a.Reorder.Enabled {
			state = "disabled"
			if a.Reorder.Dragging() {
				a.Reorder.Cancel()
				a.InteractionMode = false
			}
		}
		a.LogInfo("reorder %s", state)
		return a, nil

	case "R":
		a.Player.Repeat = !a.Player.Repeat
		return a, nil

	case " ", "space":
		a.Player.Toggle()
		return a, nil

	case "t":
		cycleTheme(a)
		return a, nil

	case "j", "down":
		if a.ShowLogs {
			if a.LogScrollOffset < len(a.LogMessages)-1 {
				a.LogScrollOffset++
			}
		} else if !a.Reorder.Dragging() {
			a.List.ScrollBy(1)
		}
		return a, nil

	case "k", "up":
		if a.ShowLogs {
			if a.LogScrollOffset > 0 {
				a.LogScrollOffset--
			}
		} else if !a.Reorder.Dragging() {
			a.List.ScrollBy(-1)
		}
		return a, nil
	}

	return a, nil
}

// cycleTheme switches to the next registered theme. Rows are cached
// with their styles baked in, so every row needs a refresh afterwards.
func cycleTheme(a *app.App) {
	ids := theme.AvailableThemes()
	if len(ids) == 0 {
		a.ShowNotification("theming is disabled (start with --theme)", "warning", config.NotificationDuration)
		return
	}

	current := ""
	if t := theme.Current(); t != nil {
		current = t.ID
	}
	next := ids[0]
	for i, id := range ids {
		if id == current {
			next = ids[(i+1)%len(ids)]
			break
		}
	}
	if err := theme.Initialize(next); err != nil {
		a.LogError("failed to switch theme: %v", err)
		return
	}

	all := make([]int, a.List.RowCount())
	for i := range all {
		all[i] = i
	}
	a.List.RefreshRows(all)
	a.ShowNotification("theme: "+next, "info", config.NotificationDuration)
}
