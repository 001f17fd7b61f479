package listview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/dodorz/tuikit/internal/reorder"
)

func sampleItems() []Item {
	return []Item{
		{ID: "a", Title: "Alpha", Badge: "3"},
		{ID: "b", Title: "Beta", Height: 2},
		{ID: "c", Title: "Gamma"},
		{ID: "d", Title: "Delta", Height: 3},
		{ID: "e", Title: "Epsilon"},
	}
}

func TestRowGeometry(t *testing.T) {
	l := New(sampleItems())

	tests := []struct {
		index      int
		wantY      float64
		wantHeight float64
	}{
		{0, 0, 1},
		{1, 1, 2},
		{2, 3, 1},
		{3, 4, 3},
		{4, 7, 1},
	}
	for _, tt := range tests {
		r := l.RowRect(tt.index)
		if r.Y != tt.wantY || r.Height != tt.wantHeight {
			t.Errorf("RowRect(%d) = y %v h %v, want y %v h %v",
				tt.index, r.Y, r.Height, tt.wantY, tt.wantHeight)
		}
	}
	if got := l.ContentHeight(); got != 8 {
		t.Errorf("ContentHeight = %v, want 8", got)
	}
}

func TestIndexAt(t *testing.T) {
	l := New(sampleItems())

	tests := []struct {
		y      float64
		want   int
		wantOK bool
	}{
		{0, 0, true},
		{0.5, 0, true},
		{1, 1, true},
		{2.9, 1, true},
		{3, 2, true},
		{4, 3, true},
		{6.9, 3, true},
		{7, 4, true},
		{7.9, 4, true},
		{8, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := l.IndexAt(reorder.Point{X: 1, Y: tt.y})
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("IndexAt(y=%v) = (%d, %v), want (%d, %v)", tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMoveRowVisual(t *testing.T) {
	l := New(sampleItems())
	l.SetPlaceholder(1)

	l.MoveRowVisual(1, 3)
	ids := make([]string, 0, l.RowCount())
	for _, it := range l.Items() {
		ids = append(ids, it.ID)
	}
	if got, want := strings.Join(ids, ""), "acdbe"; got != want {
		t.Errorf("order after move = %q, want %q", got, want)
	}
	if l.Placeholder() != 3 {
		t.Errorf("placeholder = %d, should follow the moved row to 3", l.Placeholder())
	}

	l.MoveRowVisual(3, 0)
	ids = ids[:0]
	for _, it := range l.Items() {
		ids = append(ids, it.ID)
	}
	if got, want := strings.Join(ids, ""), "bacde"; got != want {
		t.Errorf("order after second move = %q, want %q", got, want)
	}
}

func TestScrollOffsetClamped(t *testing.T) {
	l := New(sampleItems()) // content height 8
	l.SetSize(40, 5)

	l.SetScrollOffset(100)
	if got := l.ScrollOffset(); got != 3 {
		t.Errorf("offset = %v, want clamp at 3", got)
	}
	l.SetScrollOffset(-100)
	if got := l.ScrollOffset(); got != 0 {
		t.Errorf("offset = %v, want clamp at 0", got)
	}

	inset := New(sampleItems(), WithTopInset(2))
	inset.SetSize(40, 5)
	inset.SetScrollOffset(-100)
	if got := inset.ScrollOffset(); got != -2 {
		t.Errorf("offset with inset = %v, want clamp at -2", got)
	}
}

func TestShortContentCannotScroll(t *testing.T) {
	l := New(sampleItems()[:2]) // content height 3
	l.SetSize(40, 10)
	l.ScrollBy(5)
	if got := l.ScrollOffset(); got != 0 {
		t.Errorf("offset = %v, want 0 for content shorter than viewport", got)
	}
}

func TestViewWindowsToViewport(t *testing.T) {
	l := New(sampleItems())
	l.SetSize(20, 4)

	lines := strings.Split(l.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("view has %d lines, want 4", len(lines))
	}
	if !strings.Contains(ansi.Strip(lines[0]), "Alpha") {
		t.Errorf("first visible line = %q, want Alpha row", ansi.Strip(lines[0]))
	}

	l.SetScrollOffset(3)
	lines = strings.Split(l.View(), "\n")
	if !strings.Contains(ansi.Strip(lines[0]), "Gamma") {
		t.Errorf("first visible line after scroll = %q, want Gamma row", ansi.Strip(lines[0]))
	}
}

func TestViewPadsShortContent(t *testing.T) {
	l := New(sampleItems()[:2])
	l.SetSize(20, 6)
	lines := strings.Split(l.View(), "\n")
	if len(lines) != 6 {
		t.Fatalf("view has %d lines, want 6 with padding", len(lines))
	}
}

func TestViewWithPreviewOverlay(t *testing.T) {
	l := New(sampleItems())
	l.SetSize(20, 8)

	preview := reorder.Preview{
		Image:   l.RowPreview(0),
		CenterY: 4.5,
		Height:  1,
		Opacity: 1,
	}
	lines := strings.Split(l.ViewWithPreview(preview), "\n")
	if !strings.Contains(ansi.Strip(lines[4]), "Alpha") {
		t.Errorf("line 4 = %q, want preview overlay of Alpha", ansi.Strip(lines[4]))
	}

	// Preview centered past the content edge must not panic or write
	// outside the viewport.
	preview.CenterY = 100
	out := l.ViewWithPreview(preview)
	if got := len(strings.Split(out, "\n")); got != 8 {
		t.Errorf("view has %d lines, want 8", got)
	}
}

func TestRefreshRowsInvalidatesCache(t *testing.T) {
	l := New(sampleItems())
	l.SetSize(20, 8)

	before := l.View()
	if !strings.Contains(ansi.Strip(before), "Alpha") {
		t.Fatal("expected Alpha in initial view")
	}

	l.items[0].Title = "Omega"
	if strings.Contains(ansi.Strip(l.View()), "Omega") {
		t.Fatal("row renders should be served from the cache until refreshed")
	}

	l.RefreshRows([]int{0})
	if !strings.Contains(ansi.Strip(l.View()), "Omega") {
		t.Error("refreshed row should re-render with the new title")
	}
}

func TestRefreshRowsIgnoresOutOfRange(t *testing.T) {
	l := New(sampleItems())
	l.RefreshRows([]int{-1, 99})
}

func TestPlaceholderRowHidesBadge(t *testing.T) {
	l := New(sampleItems())
	l.SetSize(20, 8)
	l.SetPlaceholder(0)
	lines := strings.Split(l.View(), "\n")
	if strings.Contains(ansi.Strip(lines[0]), "3") {
		t.Errorf("placeholder row = %q, badge should be hidden", ansi.Strip(lines[0]))
	}
}

var _ reorder.Host = (*List)(nil)
