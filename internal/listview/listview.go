// Package listview provides a scrollable, row-based list widget that
// renders with lipgloss and exposes the geometry callbacks a reorder
// controller needs.
//
// Rows are cell-based: every item occupies an integer number of
// terminal rows, and content coordinates are measured in rows from the
// top of the list. The widget keeps a per-item render cache that is
// invalidated through RefreshRows.
package listview

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/dodorz/tuikit/internal/config"
	"github.com/dodorz/tuikit/internal/reorder"
	"github.com/dodorz/tuikit/internal/theme"
)

// Item is one list entry.
type Item struct {
	// ID identifies the item across reorders.
	ID string

	// Title is the primary text of the row.
	Title string

	// Badge is optional trailing text, right-aligned.
	Badge string

	// Height is the row height in terminal rows. Zero means
	// config.DefaultRowHeight.
	Height int
}

func (it Item) rows() int {
	if it.Height <= 0 {
		return config.DefaultRowHeight
	}
	return it.Height
}

// List is a vertically scrolling list of items. It implements
// reorder.Host so a reorder controller can drive it directly.
type List struct {
	items  []Item
	width  int
	height int

	topInset    float64
	offset      float64
	placeholder int

	cache map[string][]string
}

// Option configures a List.
type Option func(*List)

// WithTopInset adds scrollable space above the first row.
func WithTopInset(inset float64) Option {
	return func(l *List) {
		l.topInset = inset
	}
}

// New creates a list with the given items.
func New(items []Item, opts ...Option) *List {
	l := &List{
		items:       append([]Item(nil), items...),
		width:       40,
		height:      config.DefaultListHeight,
		placeholder: -1,
		cache:       make(map[string][]string),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetSize updates the viewport dimensions in terminal cells.
func (l *List) SetSize(width, height int) {
	if width != l.width {
		// Row layout depends on the width, so every cached render is
		// stale.
		l.cache = make(map[string][]string)
	}
	l.width = width
	l.height = height
	l.SetScrollOffset(l.offset)
}

// Width returns the list width in cells.
func (l *List) Width() int { return l.width }

// Height returns the viewport height in cells.
func (l *List) Height() int { return l.height }

// Items returns the items in their current visual order.
func (l *List) Items() []Item {
	return append([]Item(nil), l.items...)
}

// Item returns the item at index.
func (l *List) Item(index int) Item {
	return l.items[index]
}

// SetItems replaces the list contents and resets the render cache.
func (l *List) SetItems(items []Item) {
	l.items = append([]Item(nil), items...)
	l.cache = make(map[string][]string)
	l.placeholder = -1
	l.SetScrollOffset(l.offset)
}

// SetPlaceholder marks the row at index as the drag placeholder, drawn
// dimmed while its floating preview is shown. Pass -1 to clear.
func (l *List) SetPlaceholder(index int) {
	l.placeholder = index
}

// Placeholder returns the current placeholder index, or -1.
func (l *List) Placeholder() int { return l.placeholder }

// ScrollBy adjusts the scroll offset by delta rows, clamped to the
// scrollable range.
func (l *List) ScrollBy(delta float64) {
	l.SetScrollOffset(l.offset + delta)
}

// RowCount implements reorder.Host.
func (l *List) RowCount() int { return len(l.items) }

// RowRect implements reorder.Host. Rows are stacked from content Y 0
// with no spacing.
func (l *List) RowRect(index int) reorder.Rect {
	y := 0.0
	for i := 0; i < index; i++ {
		y += float64(l.items[i].rows())
	}
	return reorder.Rect{
		X:      0,
		Y:      y,
		Width:  float64(l.width),
		Height: float64(l.items[index].rows()),
	}
}

// IndexAt implements reorder.Host.
func (l *List) IndexAt(p reorder.Point) (int, bool) {
	if p.Y < 0 {
		return 0, false
	}
	y := 0.0
	for i, it := range l.items {
		next := y + float64(it.rows())
		if p.Y < next {
			return i, true
		}
		y = next
	}
	return 0, false
}

// RowPreview implements reorder.Host: the rendered row, joined across
// its lines, captured for the floating drag image.
func (l *List) RowPreview(index int) string {
	return strings.Join(l.renderRow(index, false), "\n")
}

// MoveRowVisual implements reorder.Host with a remove-and-reinsert
// splice. The placeholder marker follows the moved row.
func (l *List) MoveRowVisual(from, to int) {
	moved := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items[:to], append([]Item{moved}, l.items[to:]...)...)
	if l.placeholder == from {
		l.placeholder = to
	}
}

// RefreshRows implements reorder.Host by dropping the render cache for
// the given rows.
func (l *List) RefreshRows(indices []int) {
	for _, i := range indices {
		if i >= 0 && i < len(l.items) {
			delete(l.cache, l.items[i].ID)
		}
	}
}

// Viewport implements reorder.Host.
func (l *List) Viewport() reorder.Rect {
	return reorder.Rect{
		X:      0,
		Y:      l.offset,
		Width:  float64(l.width),
		Height: float64(l.height),
	}
}

// ContentHeight implements reorder.Host.
func (l *List) ContentHeight() float64 {
	total := 0.0
	for _, it := range l.items {
		total += float64(it.rows())
	}
	return total
}

// TopInset implements reorder.Host.
func (l *List) TopInset() float64 { return l.topInset }

// ScrollOffset implements reorder.Host.
func (l *List) ScrollOffset() float64 { return l.offset }

// SetScrollOffset implements reorder.Host, clamping to the scrollable
// range so callers cannot scroll past the content.
func (l *List) SetScrollOffset(y float64) {
	maxOffset := l.ContentHeight() - float64(l.height)
	if maxOffset < -l.topInset {
		maxOffset = -l.topInset
	}
	switch {
	case y < -l.topInset:
		y = -l.topInset
	case y > maxOffset:
		y = maxOffset
	}
	l.offset = y
}

// View renders the visible slice of the list.
func (l *List) View() string {
	return strings.Join(l.visibleLines(), "\n")
}

// ViewWithPreview renders the visible slice with the floating drag
// preview composited over it at the preview's center row.
func (l *List) ViewWithPreview(p reorder.Preview) string {
	lines := l.visibleLines()

	previewLines := strings.Split(p.Image, "\n")
	style := theme.PreviewStyle().Width(l.width)
	top := int(p.CenterY-p.Height/2) - int(l.offset)
	for i, pl := range previewLines {
		row := top + i
		if row < 0 || row >= len(lines) {
			continue
		}
		lines[row] = style.Render(ansi.Strip(pl))
	}
	return strings.Join(lines, "\n")
}

// visibleLines renders every row, then windows the result to the
// viewport. Content shorter than the viewport is padded with blanks.
func (l *List) visibleLines() []string {
	var lines []string
	for i := range l.items {
		lines = append(lines, l.renderRow(i, i == l.placeholder)...)
	}

	start := int(l.offset)
	if start < 0 {
		pad := make([]string, -start)
		for i := range pad {
			pad[i] = strings.Repeat(" ", l.width)
		}
		lines = append(pad, lines...)
		start = 0
	}
	if start > len(lines) {
		start = len(lines)
	}
	end := start + l.height
	if end > len(lines) {
		for len(lines) < end {
			lines = append(lines, strings.Repeat(" ", l.width))
		}
	}
	return lines[start:end]
}

// renderRow produces the item's lines at the list width. Placeholder
// rows bypass the cache since the dim state is transient.
func (l *List) renderRow(index int, placeholder bool) []string {
	it := l.items[index]
	if !placeholder {
		if cached, ok := l.cache[it.ID]; ok {
			return cached
		}
	}

	title := it.Title
	badge := ""
	if it.Badge != "" {
		badge = theme.BadgeStyle().Render(it.Badge)
	}
	gap := l.width - ansi.StringWidth(title) - lipgloss.Width(badge) - 2
	if gap < 1 {
		title = ansi.Truncate(title, max(l.width-lipgloss.Width(badge)-5, 0), "...")
		gap = max(l.width-ansi.StringWidth(title)-lipgloss.Width(badge)-2, 1)
	}

	rowStyle := theme.RowStyle()
	if placeholder {
		rowStyle = theme.PlaceholderStyle()
		badge = ""
		gap = max(l.width-ansi.StringWidth(title)-2, 1)
	}
	line := rowStyle.Width(l.width).Render(" " + title + strings.Repeat(" ", gap) + badge)

	lines := []string{line}
	blank := rowStyle.Width(l.width).Render("")
	for len(lines) < it.rows() {
		lines = append(lines, blank)
	}
	if !placeholder {
		l.cache[it.ID] = lines
	}
	return lines
}
