// Package app provides the tuikit demo application model: a
// reorderable list wired to a backing store, a playback bar, and the
// notification and log plumbing shared by the overlays.
package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dodorz/tuikit/internal/config"
	"github.com/dodorz/tuikit/internal/listview"
	"github.com/dodorz/tuikit/internal/media"
	"github.com/dodorz/tuikit/internal/reorder"
)

// App represents the demo application state.
type App struct {
	List     *listview.List
	Reorder  *reorder.Controller
	Player   *media.Player
	ListTop  int // screen row where the list viewport starts
	ListLeft int

	Width  int
	Height int

	// store is the canonical item order. The reorder callbacks mutate
	// it in lockstep with the visual order.
	store []listview.Item

	ShowEnv  bool
	ShowLogs bool
	ShowHelp bool

	InteractionMode bool
	idleFrames      int
	lastTick        time.Time

	Notifications   []Notification
	LogMessages     []LogMessage
	LogScrollOffset int
}

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

func createID() string {
	return uuid.New().String()
}

// New creates the demo application around the given items.
func New(items []listview.Item) *App {
	a := &App{
		store:   append([]listview.Item(nil), items...),
		ListTop: 1,
		Player: &media.Player{
			Title:    "ambient-loop.wav",
			Duration: 3*time.Minute + 24*time.Second,
			Repeat:   config.MediaRepeat,
		},
	}
	a.List = listview.New(items)
	a.List.SetSize(40, config.ListHeight)

	a.Reorder = reorder.New(a.List, a.dataSource(),
		reorder.WithPreviewOpacity(config.PreviewOpacity),
		reorder.WithLogger(a.LogWarn),
	)
	a.Reorder.Enabled = config.ReorderEnabled
	return a
}

// dataSource wires the reorder callbacks to the backing store. Begin
// stashes the dragged item and hands its identity back as the opaque
// handle; Move keeps the store in lockstep with each visual swap;
// Finish verifies the handle landed where the visuals say it did.
func (a *App) dataSource() reorder.DataSource {
	return reorder.DataSource{
		BeginReorder: func(index int) any {
			item := a.store[index]
			a.List.SetPlaceholder(index)
			return item
		},
		FinishReorder: func(handle any, index int) {
			a.List.SetPlaceholder(-1)
			item, ok := handle.(listview.Item)
			if !ok {
				a.LogError("reorder finished with unexpected handle %T", handle)
				return
			}
			if index < 0 || index >= len(a.store) {
				a.LogError("reorder finished at out-of-range index %d", index)
				return
			}
			if a.store[index].ID != item.ID {
				a.LogWarn("store order diverged at %d: have %s, dropped %s",
					index, a.store[index].ID, item.ID)
				return
			}
			a.ShowNotification(fmt.Sprintf("Moved %q to position %d", item.Title, index+1),
				"success", config.NotificationDuration)
		},
		Move: func(from, to int) {
			moved := a.store[from]
			a.store = append(a.store[:from], a.store[from+1:]...)
			a.store = append(a.store[:to], append([]listview.Item{moved}, a.store[to:]...)...)
		},
	}
}

// Store returns the canonical item order.
func (a *App) Store() []listview.Item {
	return append([]listview.Item(nil), a.store...)
}

// ListPoint converts screen cell coordinates to list content
// coordinates. The pointer maps to the center of its cell, so a cell
// on a row boundary reads as penetration into that row. ok is false
// when the cell lies outside the list viewport.
func (a *App) ListPoint(x, y int) (reorder.Point, bool) {
	relX := x - a.ListLeft
	relY := y - a.ListTop
	if relX < 0 || relX >= a.List.Width() || relY < 0 || relY >= a.List.Height() {
		return reorder.Point{}, false
	}
	return reorder.Point{
		X: float64(relX) + 0.5,
		Y: float64(relY) + 0.5 + a.List.ScrollOffset(),
	}, true
}

// Log adds a new log message to the log buffer.
func (a *App) Log(level, format string, args ...any) {
	a.LogMessages = append(a.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	// Keep only last MaxLogMessages messages
	if len(a.LogMessages) > config.MaxLogMessages {
		a.LogMessages = a.LogMessages[len(a.LogMessages)-config.MaxLogMessages:]
	}
}

// LogInfo logs an informational message.
func (a *App) LogInfo(format string, args ...any) {
	a.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (a *App) LogWarn(format string, args ...any) {
	a.Log("WARN", format, args...)
}

// LogError logs an error message.
func (a *App) LogError(format string, args ...any) {
	a.Log("ERROR", format, args...)
}

// ShowNotification displays a temporary notification.
func (a *App) ShowNotification(message, notifType string, duration time.Duration) {
	a.Notifications = append(a.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	// Also log the notification
	switch notifType {
	case "error":
		a.LogError("%s", message)
	case "warning":
		a.LogWarn("%s", message)
	default:
		a.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (a *App) CleanupNotifications() {
	now := time.Now()
	var active []Notification
	for _, notif := range a.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}
	a.Notifications = active
}
