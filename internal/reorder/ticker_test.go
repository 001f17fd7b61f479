package reorder

import (
	"testing"
	"time"
)

func TestTickerGenerationInvalidation(t *testing.T) {
	tk := NewTicker(time.Second / 60)

	if tk.Running() {
		t.Fatal("new ticker should not be running")
	}
	if tk.Next() != nil {
		t.Fatal("Next on a stopped ticker should return nil")
	}

	if tk.Start() == nil {
		t.Fatal("Start should return the first tick command")
	}
	if !tk.Valid(TickMsg{Gen: 1}) {
		t.Error("tick from the current run should be valid")
	}
	if tk.Valid(TickMsg{Gen: 0}) {
		t.Error("tick from a previous run must be stale")
	}

	tk.Stop()
	if tk.Valid(TickMsg{Gen: 1}) {
		t.Error("in-flight tick must be invalidated by Stop")
	}

	// A restart bumps the generation past every in-flight tick.
	tk.Start()
	if tk.Valid(TickMsg{Gen: 1}) {
		t.Error("tick from before the restart must remain stale")
	}
	if !tk.Valid(TickMsg{Gen: 3}) {
		t.Error("tick from the restarted run should be valid")
	}
}
