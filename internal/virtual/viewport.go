package virtual

// Viewport is an in-memory scroll surface. It clamps its offset to
// [0, max(0, content-extent)] on every change.
type Viewport struct {
	offset   int
	extent   int
	content  int
	measured bool
}

// NewViewport returns an unmeasured viewport.
func NewViewport() *Viewport {
	return &Viewport{}
}

// Extent implements Surface.
func (vp *Viewport) Extent() (int, bool) {
	return vp.extent, vp.measured
}

// Offset implements Surface.
func (vp *Viewport) Offset() int {
	return vp.offset
}

// SetOffset implements Surface.
func (vp *Viewport) SetOffset(offset int) {
	vp.offset = offset
	vp.clamp()
}

// SetExtent records the visible size and marks the viewport measured.
func (vp *Viewport) SetExtent(extent int) {
	vp.extent = max(extent, 0)
	vp.measured = true
	vp.clamp()
}

// SetContentSize records the scrollable size.
func (vp *Viewport) SetContentSize(size int) {
	vp.content = max(size, 0)
	vp.clamp()
}

// ContentSize returns the scrollable size.
func (vp *Viewport) ContentSize() int {
	return vp.content
}

// MaxOffset returns the largest reachable offset.
func (vp *Viewport) MaxOffset() int {
	return max(0, vp.content-vp.extent)
}

// AtBottom reports whether the viewport shows the end of the content.
func (vp *Viewport) AtBottom() bool {
	return vp.offset >= vp.MaxOffset()
}

func (vp *Viewport) clamp() {
	vp.offset = min(max(vp.offset, 0), vp.MaxOffset())
}
