// Package reorder implements a drag-to-reorder controller for
// scrollable list views.
//
// The controller owns the gesture state machine for one list: it
// receives press-began/changed/ended events in list content
// coordinates, maintains a floating preview of the dragged row,
// auto-scrolls the list when the pointer nears the viewport edges, and
// mutates the row ordering through delegate callbacks. Geometry is
// queried from a Host on demand and never cached across ticks, since
// the list can reflow between events.
package reorder

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/dodorz/tuikit/internal/config"
)

// Host is the capability set the controller requires from the list
// view it is attached to. All calls are synchronous; coordinates are
// in list content space.
type Host interface {
	// RowCount returns the number of rows currently in the list.
	RowCount() int

	// RowRect returns the rectangle of the row at index.
	RowRect(index int) Rect

	// IndexAt resolves a point to the row under it. ok is false when
	// no row contains the point.
	IndexAt(p Point) (index int, ok bool)

	// RowPreview returns the rendered representation of the row at
	// index, used as the floating drag preview image.
	RowPreview(index int) string

	// MoveRowVisual removes the row at from and reinserts it at to as
	// a single visual update batch.
	MoveRowVisual(from, to int)

	// RefreshRows requests a visual refresh of the given rows.
	RefreshRows(indices []int)

	// Viewport returns the visible bounds in content coordinates.
	Viewport() Rect

	// ContentHeight returns the total height of all rows.
	ContentHeight() float64

	// TopInset returns the scrollable inset above the content start.
	TopInset() float64

	// ScrollOffset returns the current vertical scroll offset.
	ScrollOffset() float64

	// SetScrollOffset applies a new vertical scroll offset.
	SetScrollOffset(y float64)
}

// DataSource holds the reorder callbacks. BeginReorder and
// FinishReorder are required; the remaining hooks are optional and
// checked with plain nil tests. A nil optional hook selects the
// documented default behavior.
type DataSource struct {
	// BeginReorder is invoked when a drag session starts. The caller
	// removes or stashes the item at index and returns an opaque
	// handle, owned by the session until FinishReorder.
	BeginReorder func(index int) any

	// FinishReorder reinserts the item identified by handle at index
	// when the session ends.
	FinishReorder func(handle any, index int)

	// CanMove reports whether the row at index may be dragged.
	// Nil means every row is movable.
	CanMove func(index int) bool

	// SuggestTarget may veto or redirect a proposed move, returning
	// the index to use instead. Nil accepts the proposal unchanged.
	SuggestTarget func(from, to int) int

	// Move mutates the backing store in lockstep with the visual
	// reorder. When nil, swaps are visual-only and a diagnostic is
	// emitted: visual and data order diverge, which is the caller's
	// responsibility to reconcile.
	Move func(from, to int)
}

// Preview is the floating representation of the dragged row.
type Preview struct {
	// Image is the rendered row captured when the drag began.
	Image string

	// CenterY is the vertical center of the preview in content space.
	CenterY float64

	// Height is the height of the dragged row.
	Height float64

	// Opacity is the preview transparency, 0 to 1.
	Opacity float64
}

// Session is the bounded lifetime of one drag gesture. At most one
// session is live per controller.
type Session struct {
	id            string
	initial       int
	current       int
	handle        any
	handleSaved   bool
	preview       Preview
	lastPointerX  float64
	lastViewportY float64
	scrollRate    float64
	settling      bool
}

// ID returns the unique identifier of the session.
func (s *Session) ID() string { return s.id }

// InitialPosition returns the row index the drag started at.
func (s *Session) InitialPosition() int { return s.initial }

// CurrentPosition returns the row index of the dragged placeholder.
func (s *Session) CurrentPosition() int { return s.current }

// ScrollRate returns the signed auto-scroll rate, 0 when idle.
func (s *Session) ScrollRate() float64 { return s.scrollRate }

// Controller tracks a drag-to-reorder gesture on one list view.
// It is not safe for concurrent use; all events must arrive on the
// same update loop, which is the Bubble Tea execution model.
type Controller struct {
	host   Host
	source DataSource

	// Enabled toggles the gesture recognizer. While false, press
	// events are ignored.
	Enabled bool

	// PreviewOpacity is applied to new sessions' previews.
	PreviewOpacity float64

	logf      func(format string, args ...any)
	session   *Session
	ticker    *Ticker
	settleGen uint64
	resets    int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostic sink. Diagnostics are non-fatal
// notes; no errors cross the controller boundary.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(c *Controller) {
		c.logf = logf
	}
}

// WithPreviewOpacity sets the drag preview transparency (0-1).
func WithPreviewOpacity(opacity float64) Option {
	return func(c *Controller) {
		c.PreviewOpacity = clamp(opacity, 0, 1)
	}
}

// New creates a controller attached to host with the given callbacks.
func New(host Host, source DataSource, opts ...Option) *Controller {
	c := &Controller{
		host:           host,
		source:         source,
		Enabled:        true,
		PreviewOpacity: config.DefaultPreviewOpacity,
		logf:           func(string, ...any) {},
		ticker:         NewTicker(config.ReorderTickInterval),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dragging reports whether a session is live.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// Session returns the live session, or nil.
func (c *Controller) Session() *Session {
	return c.session
}

// CurrentPreview returns the floating preview and true while a session
// is live. The preview exists if and only if a session does.
func (c *Controller) CurrentPreview() (Preview, bool) {
	if c.session == nil {
		return Preview{}, false
	}
	return c.session.preview, true
}

// DraggingRowHeight returns the height of the row being dragged, or 0
// when no session is live.
func (c *Controller) DraggingRowHeight() float64 {
	if c.session == nil {
		return 0
	}
	return c.session.preview.Height
}

// RecognizerResets returns how many times the recognizer was reset by
// an aborted begin transition.
func (c *Controller) RecognizerResets() int {
	return c.resets
}

// PressBegan starts a drag session at the row under p. Returns the
// command that starts the auto-scroll ticker, or nil when no session
// was created. A press while a session is already live is a no-op.
func (c *Controller) PressBegan(p Point) tea.Cmd {
	if !c.Enabled || c.session != nil {
		return nil
	}
	if c.host.RowCount() == 0 {
		c.abortBegin("press on empty list")
		return nil
	}
	index, ok := c.host.IndexAt(p)
	if !ok {
		c.abortBegin("no row at press point")
		return nil
	}
	if c.source.CanMove != nil && !c.source.CanMove(index) {
		c.abortBegin("move refused for row %d", index)
		return nil
	}
	if c.source.BeginReorder == nil {
		c.abortBegin("BeginReorder callback not set")
		return nil
	}

	rect := c.host.RowRect(index)
	s := &Session{
		id:      uuid.New().String(),
		initial: index,
		current: index,
		preview: Preview{
			Image:   c.host.RowPreview(index),
			CenterY: rect.MidY(),
			Height:  rect.Height,
			Opacity: c.PreviewOpacity,
		},
		lastPointerX:  p.X,
		lastViewportY: p.Y - c.host.ScrollOffset(),
	}
	s.handle = c.source.BeginReorder(index)
	s.handleSaved = true
	c.session = s
	return c.ticker.Start()
}

// PressChanged tracks pointer movement during a live session: it
// repositions the preview, recomputes the candidate target row, and
// recomputes the auto-scroll rate. Ignored when idle or settling.
func (c *Controller) PressChanged(p Point) {
	s := c.session
	if s == nil || s.settling {
		return
	}
	if !c.validateSession() {
		return
	}
	s.lastPointerX = p.X
	s.lastViewportY = p.Y - c.host.ScrollOffset()
	c.positionPreview(p.Y)
	c.recalculateTarget(p)
	s.scrollRate = c.scrollRateAt(p.Y)
}

// PressEnded stops the ticker and begins the drop: the preview settles
// onto the target row over DropSettleDuration; the returned command
// delivers a SettledMsg whose handling finalizes the session. No other
// event may mutate the session during the settle span.
func (c *Controller) PressEnded(p Point) tea.Cmd {
	s := c.session
	if s == nil || s.settling {
		return nil
	}
	c.ticker.Stop()
	s.scrollRate = 0
	s.settling = true
	s.preview.CenterY = c.host.RowRect(s.current).MidY()
	c.settleGen++
	gen := c.settleGen
	return SettleCmd(gen)
}

// HandleSettled finalizes the session after the drop animation:
// FinishReorder is invoked with the stored handle, visible rows other
// than the target are refreshed, and the session is cleared. Stale
// settle messages are ignored.
func (c *Controller) HandleSettled(msg SettledMsg) {
	s := c.session
	if s == nil || !s.settling || msg.Gen != c.settleGen {
		return
	}
	c.completeDrop()
}

// Cancel aborts a live session, performing the same cleanup as a
// press-ended drop but skipping FinishReorder when no handle was ever
// saved. Calling Cancel with no live session is a no-op.
func (c *Controller) Cancel() {
	if c.session == nil {
		return
	}
	c.ticker.Stop()
	c.completeDrop()
}

// HandleTick performs one auto-scroll step and schedules the next
// tick. Stale ticks and ticks with no live session self-cancel by
// returning nil.
func (c *Controller) HandleTick(msg TickMsg) tea.Cmd {
	if !c.ticker.Valid(msg) {
		return nil
	}
	s := c.session
	if s == nil {
		c.ticker.Stop()
		return nil
	}
	if !c.validateSession() {
		return nil
	}

	if s.scrollRate != 0 {
		vp := c.host.Viewport()
		maxOffset := c.host.ContentHeight() - vp.Height
		if maxOffset < -c.host.TopInset() {
			// Content shorter than the viewport: clamping is a no-op.
			maxOffset = -c.host.TopInset()
		}
		offset := c.host.ScrollOffset() + s.scrollRate*config.AutoScrollStep
		c.host.SetScrollOffset(clamp(offset, -c.host.TopInset(), maxOffset))
	}

	// The viewport moved under the pointer: re-derive the content
	// point from the last known viewport-relative position, then
	// reposition the preview and re-run target recalculation.
	p := Point{X: s.lastPointerX, Y: c.host.ScrollOffset() + s.lastViewportY}
	c.positionPreview(p.Y)
	c.recalculateTarget(p)

	return c.ticker.Next()
}

// SettleCmd returns the command that delivers the drop-settle signal
// for generation gen after the settle duration.
func SettleCmd(gen uint64) tea.Cmd {
	return tea.Tick(config.DropSettleDuration, func(time.Time) tea.Msg {
		return SettledMsg{Gen: gen}
	})
}

// abortBegin emits a diagnostic and resets the recognizer so the
// host-side gesture tracking starts fresh. The disable-then-reenable
// toggle does not tear down any session; begin aborts happen before a
// session exists.
func (c *Controller) abortBegin(format string, args ...any) {
	c.logf("reorder: "+format, args...)
	c.Enabled = false
	c.Enabled = true
	c.resets++
}

// validateSession enforces the invariant that currentPosition stays in
// [0, rowCount) while the session is live. A stale index means the
// row layout changed unexpectedly; the session is cancelled.
func (c *Controller) validateSession() bool {
	s := c.session
	n := c.host.RowCount()
	if n == 0 || s.current < 0 || s.current >= n {
		c.logf("reorder: row %d out of bounds after reflow (count %d), cancelling", s.current, n)
		c.Cancel()
		return false
	}
	return true
}

// positionPreview moves the preview's vertical center to y, clamped so
// the preview never runs away past the content bounds.
func (c *Controller) positionPreview(y float64) {
	c.session.preview.CenterY = clamp(y, 0, c.host.ContentHeight()+config.PreviewOverdrag)
}

// recalculateTarget resolves the row under p and commits a swap once
// the pointer has crossed the hysteresis threshold into the
// destination row. The threshold is the height difference between
// destination and source rows, so unequal heights cannot oscillate.
func (c *Controller) recalculateTarget(p Point) {
	s := c.session
	proposed, ok := c.host.IndexAt(p)
	if !ok {
		return
	}
	if c.source.SuggestTarget != nil {
		proposed = c.source.SuggestTarget(s.current, proposed)
	}
	n := c.host.RowCount()
	if proposed == s.current || proposed < 0 || proposed >= n {
		return
	}

	dst := c.host.RowRect(proposed)
	src := c.host.RowRect(s.current)
	threshold := dst.Height - src.Height

	// Penetration is measured from the edge the pointer entered
	// through: the destination's top when moving down, its bottom
	// when moving up.
	var penetration float64
	if proposed > s.current {
		penetration = p.Y - dst.Y
	} else {
		penetration = dst.MaxY() - p.Y
	}
	if penetration <= threshold {
		return
	}

	c.host.MoveRowVisual(s.current, proposed)
	if c.source.Move != nil {
		c.source.Move(s.current, proposed)
	} else {
		c.logf("reorder: Move callback not set; visual order and backing store now diverge")
	}
	s.current = proposed
}

// completeDrop invokes FinishReorder when a handle was saved, refreshes
// visible rows other than the target, and clears the session.
func (c *Controller) completeDrop() {
	s := c.session
	if s.handleSaved {
		if c.source.FinishReorder != nil {
			c.source.FinishReorder(s.handle, s.current)
		} else {
			c.logf("reorder: FinishReorder callback not set; handle for row %d dropped", s.current)
		}
	}

	vp := c.host.Viewport()
	var visible []int
	for i := 0; i < c.host.RowCount(); i++ {
		if i == s.current {
			continue
		}
		r := c.host.RowRect(i)
		if r.MaxY() <= vp.Y || r.Y >= vp.MaxY() {
			continue
		}
		visible = append(visible, i)
	}
	c.host.RefreshRows(visible)
	c.session = nil
}

// scrollRateAt computes the signed auto-scroll rate for pointer y. The
// rate is the fractional penetration into the top or bottom activation
// zone: 0 at the zone boundary, approaching ±1 at the viewport edge.
func (c *Controller) scrollRateAt(y float64) float64 {
	vp := c.host.Viewport()
	zone := vp.Height / config.ScrollZoneDivisor
	if zone <= 0 {
		return 0
	}
	if bottomStart := vp.MaxY() - zone; y > bottomStart {
		return clamp((y-bottomStart)/zone, 0, 1)
	}
	if topEnd := vp.Y + zone; y < topEnd {
		return clamp(-(topEnd-y)/zone, -1, 0)
	}
	return 0
}
