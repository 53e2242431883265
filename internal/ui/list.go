package ui

import (
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/vantage/internal/alerts"
	"github.com/five82/vantage/internal/anchor"
	"github.com/five82/vantage/internal/metrics"
	"github.com/five82/vantage/internal/virtual"
)

const emptyListMessage = "No alerts match your search criteria."

type listOptions struct {
	RowHeight int
	Overscan  int
	Threshold int
	Logger    *zap.Logger
}

// listView renders a windowed, anchor-preserving list of alerts. One unit of
// scroll offset is one terminal line.
type listView struct {
	items  []alerts.Alert
	vp     *virtual.Viewport
	virt   *virtual.Virtualizer
	anchor *anchor.Controller
	logger *zap.Logger

	rowHeight int
	width     int
	height    int

	// unseen counts rows inserted above the viewport since the user left
	// the top.
	unseen int
}

func newListView(opts listOptions) *listView {
	rowHeight := max(opts.RowHeight, 1)
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &listView{
		vp:        virtual.NewViewport(),
		rowHeight: rowHeight,
		logger:    logger.Named("list"),
	}
	l.virt = virtual.New(virtual.Options{
		Surface:  l.vp,
		ItemSize: rowHeight,
		Overscan: opts.Overscan,
		GetKey: func(i int) string {
			if i < 0 || i >= len(l.items) {
				return ""
			}
			return l.items[i].ID
		},
	})
	l.anchor = anchor.New(anchor.Options{ItemSize: rowHeight, Threshold: opts.Threshold})
	return l
}

// SetAlerts installs a collection that grew or shrank because alerts arrived
// or were evicted, and applies the anchor policy before the next render.
func (l *listView) SetAlerts(items []alerts.Alert) anchor.Decision {
	return l.set(items, true)
}

// Refilter installs a collection derived from a filter or search change.
// Rows it adds above the viewport are not counted as unseen.
func (l *listView) Refilter(items []alerts.Alert) anchor.Decision {
	return l.set(items, false)
}

func (l *listView) set(items []alerts.Alert, streamed bool) anchor.Decision {
	l.items = items
	l.virt.SetCount(len(items))
	l.vp.SetContentSize(l.virt.TotalSize())

	before := l.anchor.LastCount()
	decision := l.anchor.Observe(len(items), l.virt)
	if decision == anchor.Hold {
		return decision
	}

	switch {
	case decision == anchor.Shift && streamed:
		l.unseen += len(items) - before
	default:
		l.unseen = 0
	}
	if l.virt.Measured() {
		l.anchor.OnScroll(l.vp.Offset())
	}

	metrics.AnchorDecision(decision.String())
	l.logger.Debug("anchor decision",
		zap.String("decision", decision.String()),
		zap.Int("previous", before),
		zap.Int("count", len(items)),
		zap.Int("offset", l.vp.Offset()),
	)
	return decision
}

// Reset remounts the list with items, forgetting scroll history.
func (l *listView) Reset(items []alerts.Alert) {
	l.items = items
	l.virt.SetCount(len(items))
	l.vp.SetContentSize(l.virt.TotalSize())
	l.vp.SetOffset(0)
	l.anchor.Reset(len(items))
	l.unseen = 0
}

// Resize sets the list pane dimensions.
func (l *listView) Resize(width, height int) {
	l.width = max(width, 0)
	l.height = max(height, 0)
	before := l.vp.Offset()
	l.vp.SetExtent(l.height)
	if l.vp.Offset() != before {
		l.scrolled()
	}
}

// SetRowHeight changes the number of lines each row occupies.
func (l *listView) SetRowHeight(height int) {
	l.rowHeight = max(height, 1)
	l.virt.SetItemSize(l.rowHeight)
	l.anchor.SetItemSize(l.rowHeight)
	l.vp.SetContentSize(l.virt.TotalSize())
}

// ScrollLines moves the viewport by n lines, as a user gesture.
func (l *listView) ScrollLines(n int) {
	l.vp.SetOffset(l.vp.Offset() + n)
	l.scrolled()
}

// ScrollRows moves the viewport by n rows.
func (l *listView) ScrollRows(n int) {
	l.ScrollLines(n * l.rowHeight)
}

// PageDown scrolls forward by one viewport.
func (l *listView) PageDown() {
	l.ScrollLines(max(l.height, 1))
}

// PageUp scrolls back by one viewport.
func (l *listView) PageUp() {
	l.ScrollLines(-max(l.height, 1))
}

// HalfPageDown scrolls forward by half a viewport.
func (l *listView) HalfPageDown() {
	l.ScrollLines(max(l.height/2, 1))
}

// HalfPageUp scrolls back by half a viewport.
func (l *listView) HalfPageUp() {
	l.ScrollLines(-max(l.height/2, 1))
}

// Top scrolls to the newest alert.
func (l *listView) Top() {
	l.vp.SetOffset(0)
	l.scrolled()
}

// Bottom scrolls to the oldest alert.
func (l *listView) Bottom() {
	l.vp.SetOffset(l.vp.MaxOffset())
	l.scrolled()
}

func (l *listView) scrolled() {
	l.anchor.OnScroll(l.vp.Offset())
	if l.anchor.AtTop() {
		l.unseen = 0
	}
}

// ScrollToOffset moves the list to an absolute offset.
func (l *listView) ScrollToOffset(offset int) {
	l.virt.ScrollToOffset(offset)
}

// ScrollBy moves the list by delta units.
func (l *listView) ScrollBy(delta int) {
	l.virt.ScrollBy(delta)
}

// TotalSize returns the scrollable size of the list.
func (l *listView) TotalSize() int {
	return l.virt.TotalSize()
}

// VisibleItems yields the rows currently rendered.
func (l *listView) VisibleItems() iter.Seq[virtual.Item] {
	return l.virt.VisibleItems()
}

// Offset returns the current scroll position.
func (l *listView) Offset() int {
	return l.vp.Offset()
}

// Len returns the number of alerts in the list.
func (l *listView) Len() int {
	return len(l.items)
}

// Following reports whether new alerts are shown as they arrive.
func (l *listView) Following() bool {
	return l.anchor.AtTop()
}

// Unseen returns how many rows were inserted above the viewport since the
// user scrolled away from the top.
func (l *listView) Unseen() int {
	return l.unseen
}

// Position returns the 1-based range of rows intersecting the viewport.
func (l *listView) Position() (first, last int) {
	if len(l.items) == 0 || l.height == 0 {
		return 0, 0
	}
	offset := l.vp.Offset()
	return l.virt.ItemAt(offset) + 1, l.virt.ItemAt(offset+l.height-1) + 1
}

// placedRow is a visible row positioned relative to the top of the pane.
type placedRow struct {
	Index int
	Key   string
	Top   int
	Size  int
}

// listLayout is what View draws. Spacer is the scrollable size backing the
// scrollbar; it is zero for an empty list, which draws a placeholder instead.
type listLayout struct {
	Empty  bool
	Spacer int
	Rows   []placedRow
}

func (l *listView) layout() listLayout {
	if len(l.items) == 0 {
		return listLayout{Empty: true}
	}
	offset := l.vp.Offset()
	out := listLayout{Spacer: l.virt.TotalSize()}
	for item := range l.virt.VisibleItems() {
		out.Rows = append(out.Rows, placedRow{
			Index: item.Index,
			Key:   item.Key,
			Top:   item.Start - offset,
			Size:  item.Size,
		})
	}
	return out
}

// View renders the list pane at its current size.
func (l *listView) View(theme Theme) string {
	if l.width <= 0 || l.height <= 0 {
		return ""
	}
	styles := theme.Styles()
	bg := NewBgStyle(theme.SurfaceAlt)

	lay := l.layout()
	if lay.Empty {
		msg := bg.Render(emptyListMessage, styles.MutedText)
		return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, msg,
			lipgloss.WithWhitespaceBackground(bg.Color()))
	}

	rowWidth := max(l.width-scrollbarWidth, 0)
	lines := make([]string, l.height)
	for _, row := range lay.Rows {
		rendered, ok := renderRow(row.Index, l.items, rowWidth, row.Size, theme)
		if !ok {
			continue
		}
		for j, line := range strings.Split(rendered, "\n") {
			y := row.Top + j
			if y < 0 || y >= l.height {
				continue
			}
			lines[y] = line
		}
	}

	bar := l.scrollbar(lay.Spacer, theme)
	for y := range lines {
		if lines[y] == "" {
			lines[y] = bg.Spaces(rowWidth)
		}
		lines[y] += bar[y]
	}
	return strings.Join(lines, "\n")
}

// scrollbar draws a track for a spacer of total units with a thumb sized to
// the viewport.
func (l *listView) scrollbar(total int, theme Theme) []string {
	bg := NewBgStyle(theme.SurfaceAlt)
	track := bg.Render("│", lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border)))
	thumb := bg.Render("┃", lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)))

	thumbLen := l.height
	thumbTop := 0
	if total > l.height {
		thumbLen = max(1, l.height*l.height/total)
		if maxOffset := l.vp.MaxOffset(); maxOffset > 0 {
			thumbTop = l.vp.Offset() * (l.height - thumbLen) / maxOffset
		}
	}

	bar := make([]string, l.height)
	for y := range bar {
		if y >= thumbTop && y < thumbTop+thumbLen {
			bar[y] = thumb
		} else {
			bar[y] = track
		}
	}
	return bar
}
