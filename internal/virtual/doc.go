// Package virtual implements windowed rendering for long ordered lists.
//
// A Virtualizer knows how many items exist, how tall each one is and where
// the scroll surface currently sits. From that it yields only the items that
// intersect the viewport plus an overscan margin, so the cost of a frame is
// bounded by the viewport size rather than the collection size.
//
// Positions are expressed in abstract units. The terminal list uses one unit
// per text line; nothing in this package assumes that.
//
// # Surfaces
//
// The engine never owns the scroll position. It reads and writes it through
// the Surface interface, and the surface is responsible for clamping.
// Viewport is the in-memory surface used by the terminal list view. A
// surface that has not been measured yet yields an empty window and ignores
// scroll directives.
//
//	vp := virtual.NewViewport()
//	v := virtual.New(virtual.Options{Count: len(rows), Surface: vp, ItemSize: 1, Overscan: 5})
//	vp.SetExtent(height)
//	vp.SetContentSize(v.TotalSize())
//	for item := range v.VisibleItems() {
//		draw(item.Index, item.Start-vp.Offset())
//	}
package virtual
