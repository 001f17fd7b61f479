package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/tuikit/internal/config"
	"github.com/dodorz/tuikit/internal/reorder"
)

// TickerMsg represents a periodic tick event for updating the UI.
// This is exported so it can be used by the input package.
type TickerMsg time.Time

// idleThresholdFrames is how many quiet frames pass before the tick
// rate drops.
const idleThresholdFrames = 120

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, a *App) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// TickCmd creates a command that generates tick messages at 60 FPS.
// This drives playback progress and notification expiry.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// SlowTickCmd creates a command that generates tick messages at 30 FPS.
// Used during drag interactions to improve mouse responsiveness.
func SlowTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.InteractionFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Init initializes the application and starts the tick timer.
func (a *App) Init() tea.Cmd {
	return TickCmd()
}

// Update handles all incoming messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		a.CleanupNotifications()

		// A drag can end without a settle message when the controller
		// cancels internally, so re-derive the flag from the session.
		if a.InteractionMode && !a.Reorder.Dragging() {
			a.InteractionMode = false
		}

		// Advance playback by wall-clock time; the tick cadence varies
		// between the normal and slow rates.
		now := time.Time(msg)
		elapsed := time.Second / config.NormalFPS
		if !a.lastTick.IsZero() {
			if d := now.Sub(a.lastTick); d > 0 {
				elapsed = d
			}
		}
		a.lastTick = now

		if a.Player != nil && !config.HideMediaBar {
			a.Player.Advance(elapsed)
		}

		// Adaptive polling - slower during drag interactions for better
		// mouse responsiveness, and once everything is quiet.
		nextTick := TickCmd()
		if a.InteractionMode {
			nextTick = SlowTickCmd()
			a.idleFrames = 0
		} else if len(a.Notifications) > 0 || (a.Player != nil && a.Player.Playing) {
			a.idleFrames = 0
		} else {
			a.idleFrames++
			if a.idleFrames >= idleThresholdFrames {
				nextTick = SlowTickCmd()
			}
		}
		return a, nextTick

	case reorder.TickMsg:
		return a, a.Reorder.HandleTick(msg)

	case reorder.SettledMsg:
		a.Reorder.HandleSettled(msg)
		a.InteractionMode = false
		return a, nil

	case tea.WindowSizeMsg:
		a.Width = msg.Width
		a.Height = msg.Height
		a.layout()
		return a, nil
	}

	if inputHandler != nil {
		return inputHandler(msg, a)
	}
	return a, nil
}

// layout recomputes the list viewport from the terminal size. The list
// sits below the title row and above the media and status bars.
func (a *App) layout() {
	listHeight := a.Height - a.ListTop - 2
	if !config.HideMediaBar {
		listHeight--
	}
	if listHeight < 3 {
		listHeight = 3
	}
	if listHeight > config.ListHeight {
		listHeight = config.ListHeight
	}
	width := a.Width
	if width < 20 {
		width = 20
	}
	a.List.SetSize(width, listHeight)
}
