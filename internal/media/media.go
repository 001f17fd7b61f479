// Package media provides playback state tracking and time formatting
// for the media status bar.
package media

import (
	"fmt"
	"strings"
	"time"

	"github.com/dodorz/tuikit/internal/theme"
)

// FormatPlaybackTime renders a playback position as m:ss, or h:mm:ss
// once the position reaches an hour. Negative positions are treated as
// zero.
func FormatPlaybackTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatRemaining renders the time left until duration as a countdown,
// e.g. "-1:23". Positions past the duration clamp to "-0:00".
func FormatRemaining(position, duration time.Duration) string {
	left := duration - position
	if left < 0 {
		left = 0
	}
	return "-" + FormatPlaybackTime(left)
}

// ProgressBar renders a width-cell progress bar for the given
// completion fraction, clamped to [0, 1].
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return theme.MediaBarStyle().Render(bar)
}

// Player tracks the playback state of one media item. It holds no
// decoder; advancing is driven by the caller's tick loop.
type Player struct {
	// Title is the display name of the loaded item.
	Title string

	// Position is the playback cursor.
	Position time.Duration

	// Duration is the total length of the item.
	Duration time.Duration

	// Playing reports whether the cursor advances on ticks.
	Playing bool

	// Repeat wraps the cursor back to the start instead of stopping at
	// the end.
	Repeat bool
}

// Toggle flips between playing and paused.
func (p *Player) Toggle() {
	p.Playing = !p.Playing
}

// Seek moves the cursor to pos, clamped to [0, Duration].
func (p *Player) Seek(pos time.Duration) {
	switch {
	case pos < 0:
		pos = 0
	case pos > p.Duration:
		pos = p.Duration
	}
	p.Position = pos
}

// SeekFraction moves the cursor to the given completion fraction.
func (p *Player) SeekFraction(f float64) {
	p.Seek(time.Duration(f * float64(p.Duration)))
}

// Fraction returns the completion fraction in [0, 1], 0 when the
// duration is unknown.
func (p *Player) Fraction() float64 {
	if p.Duration <= 0 {
		return 0
	}
	f := float64(p.Position) / float64(p.Duration)
	if f > 1 {
		return 1
	}
	return f
}

// Advance moves the cursor forward by dt while playing. At the end of
// the item the player either wraps to the start (Repeat) or pauses with
// the cursor pinned at the duration.
func (p *Player) Advance(dt time.Duration) {
	if !p.Playing || p.Duration <= 0 {
		return
	}
	p.Position += dt
	if p.Position < p.Duration {
		return
	}
	if p.Repeat {
		p.Position = p.Position % p.Duration
		return
	}
	p.Position = p.Duration
	p.Playing = false
}

// StatusLine renders the one-line playback readout: title, position,
// bar and countdown.
func (p *Player) StatusLine(width int) string {
	title := p.Title
	if title == "" {
		title = "(nothing loaded)"
	}
	pos := FormatPlaybackTime(p.Position)
	rem := FormatRemaining(p.Position, p.Duration)

	icon := "⏸"
	if p.Playing {
		icon = "▶"
	}

	fixed := len([]rune(icon)) + 1 + len([]rune(title)) + 1 + len(pos) + 1 + 1 + len(rem)
	barWidth := width - fixed
	if barWidth < 4 {
		return fmt.Sprintf("%s %s %s %s", icon, title, pos, rem)
	}
	return fmt.Sprintf("%s %s %s %s %s", icon, title, pos, ProgressBar(p.Fraction(), barWidth), rem)
}
