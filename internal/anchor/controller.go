package anchor

// DefaultThreshold is the distance from the top, in list units, that still
// counts as being at the top.
const DefaultThreshold = 10

// Scroller receives the controller's directives.
type Scroller interface {
	// Measured reports whether directives can be applied yet.
	Measured() bool
	ScrollToOffset(offset int)
	ScrollBy(delta int)
}

// Decision is the action taken for one length transition.
type Decision int

const (
	// Hold leaves the offset untouched.
	Hold Decision = iota
	// SnapTop resets the offset after the collection shrank.
	SnapTop
	// Follow keeps the viewport at the top as new rows arrive.
	Follow
	// Shift moves the viewport down by the inserted rows.
	Shift
)

func (d Decision) String() string {
	switch d {
	case SnapTop:
		return "snap_top"
	case Follow:
		return "follow"
	case Shift:
		return "shift"
	default:
		return "hold"
	}
}

// Options configure a Controller.
type Options struct {
	ItemSize  int
	Threshold int
	// InitialCount is the length of the collection the list mounts with.
	InitialCount int
}

// Controller tracks the last observed length and whether the user was at
// the top when they last scrolled.
type Controller struct {
	itemSize  int
	threshold int

	lastCount int
	atTop     bool
}

// New returns a controller positioned at the top.
func New(opts Options) *Controller {
	if opts.ItemSize <= 0 {
		opts.ItemSize = 1
	}
	if opts.Threshold < 0 {
		opts.Threshold = 0
	}
	return &Controller{
		itemSize:  opts.ItemSize,
		threshold: opts.Threshold,
		lastCount: max(opts.InitialCount, 0),
		atTop:     true,
	}
}

// Observe applies the policy for a transition to newCount and records it.
// The length is recorded even when the scroller is not measured yet.
func (c *Controller) Observe(newCount int, s Scroller) Decision {
	delta := newCount - c.lastCount
	c.lastCount = newCount

	var decision Decision
	switch {
	case delta == 0:
		return Hold
	case delta < 0:
		decision = SnapTop
	case c.atTop:
		decision = Follow
	default:
		decision = Shift
	}

	if s == nil || !s.Measured() {
		return decision
	}
	switch decision {
	case SnapTop, Follow:
		s.ScrollToOffset(0)
	case Shift:
		s.ScrollBy(delta * c.itemSize)
	}
	return decision
}

// OnScroll records the offset reported by a user scroll.
func (c *Controller) OnScroll(offset int) {
	c.atTop = offset <= c.threshold
}

// Reset forgets all history, as when a new list is mounted.
func (c *Controller) Reset(count int) {
	c.lastCount = max(count, 0)
	c.atTop = true
}

// SetItemSize changes the size used to convert inserted rows to a shift.
func (c *Controller) SetItemSize(size int) {
	if size > 0 {
		c.itemSize = size
	}
}

// AtTop reports whether the last scroll left the user at the top.
func (c *Controller) AtTop() bool {
	return c.atTop
}

// LastCount returns the most recently observed length.
func (c *Controller) LastCount() int {
	return c.lastCount
}

// Threshold returns the at-top threshold.
func (c *Controller) Threshold() int {
	return c.threshold
}
