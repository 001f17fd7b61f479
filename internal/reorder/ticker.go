package reorder

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickMsg is a single auto-scroll tick. Gen identifies the ticker run
// that scheduled it; stale ticks from a stopped run are discarded.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// SettledMsg signals that the drop animation for a drag session has
// completed and the session should be finalized.
type SettledMsg struct {
	Gen uint64
}

// Ticker is a recurring timer whose lifecycle is tied exactly to one
// drag session: started after the session is created, stopped before
// it is torn down. Each Start bumps the generation so that ticks
// scheduled by a previous run are ignored by Valid.
type Ticker struct {
	interval time.Duration
	gen      uint64
	running  bool
}

// NewTicker returns a ticker that fires at the given interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Start begins a new ticker run and returns the command that schedules
// the first tick.
func (t *Ticker) Start() tea.Cmd {
	t.gen++
	t.running = true
	return t.Next()
}

// Next schedules the following tick of the current run. Returns nil if
// the ticker is stopped.
func (t *Ticker) Next() tea.Cmd {
	if !t.running {
		return nil
	}
	gen := t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: now}
	})
}

// Stop ends the current run. In-flight ticks become stale.
func (t *Ticker) Stop() {
	t.running = false
	t.gen++
}

// Running reports whether a run is active.
func (t *Ticker) Running() bool {
	return t.running
}

// Valid reports whether msg belongs to the current, still-running run.
func (t *Ticker) Valid(msg TickMsg) bool {
	return t.running && msg.Gen == t.gen
}
