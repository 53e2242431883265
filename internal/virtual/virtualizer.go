package virtual

import (
	"iter"
	"sort"
	"strconv"
)

// Surface is the scroll container a Virtualizer positions.
type Surface interface {
	// Extent returns the visible size of the surface. ok is false until the
	// surface has been measured.
	Extent() (extent int, ok bool)
	// Offset returns the current scroll position.
	Offset() int
	// SetOffset moves the surface; implementations clamp as needed.
	SetOffset(offset int)
}

// Options configure a Virtualizer.
type Options struct {
	Count   int
	Surface Surface

	// ItemSize is used for every item when EstimateSize is nil.
	ItemSize int
	// EstimateSize returns the size of a single item.
	EstimateSize func(index int) int

	// Overscan is the number of extra items rendered on each side.
	Overscan int

	// GetKey returns a stable identity for the item at index.
	GetKey func(index int) string
}

// Item describes one rendered slot.
type Item struct {
	Index int
	Key   string
	Start int
	Size  int
}

// End returns the first unit after the item.
func (i Item) End() int {
	return i.Start + i.Size
}

// Virtualizer computes the visible window of a list.
type Virtualizer struct {
	opts Options

	// starts[i] is the offset of item i; starts[count] is the total size.
	// Only built when EstimateSize is set.
	starts []int
	dirty  bool
}

// New builds a Virtualizer from opts.
func New(opts Options) *Virtualizer {
	if opts.Count < 0 {
		opts.Count = 0
	}
	if opts.Overscan < 0 {
		opts.Overscan = 0
	}
	if opts.ItemSize <= 0 {
		opts.ItemSize = 1
	}
	return &Virtualizer{opts: opts, dirty: true}
}

// Count returns the number of items.
func (v *Virtualizer) Count() int {
	return v.opts.Count
}

// SetCount changes the number of items.
func (v *Virtualizer) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	if count != v.opts.Count {
		v.opts.Count = count
		v.dirty = true
	}
}

// ItemSize returns the fixed item size.
func (v *Virtualizer) ItemSize() int {
	return v.opts.ItemSize
}

// SetItemSize changes the fixed item size.
func (v *Virtualizer) SetItemSize(size int) {
	if size <= 0 {
		size = 1
	}
	if size != v.opts.ItemSize {
		v.opts.ItemSize = size
		v.dirty = true
	}
}

// SetKeyFunc replaces the key function.
func (v *Virtualizer) SetKeyFunc(fn func(index int) string) {
	v.opts.GetKey = fn
}

// Surface returns the surface the virtualizer positions.
func (v *Virtualizer) Surface() Surface {
	return v.opts.Surface
}

// Measured reports whether the surface exists and has a known extent.
func (v *Virtualizer) Measured() bool {
	if v.opts.Surface == nil {
		return false
	}
	_, ok := v.opts.Surface.Extent()
	return ok
}

// TotalSize returns the size of the whole list.
func (v *Virtualizer) TotalSize() int {
	if v.opts.EstimateSize == nil {
		return v.opts.Count * v.opts.ItemSize
	}
	v.measure()
	return v.starts[v.opts.Count]
}

// ScrollToOffset moves the surface to an absolute offset. It does nothing
// when the surface is missing or unmeasured.
func (v *Virtualizer) ScrollToOffset(offset int) {
	if !v.Measured() {
		return
	}
	v.opts.Surface.SetOffset(offset)
}

// ScrollBy moves the surface relative to its current offset.
func (v *Virtualizer) ScrollBy(delta int) {
	if !v.Measured() {
		return
	}
	v.opts.Surface.SetOffset(v.opts.Surface.Offset() + delta)
}

// KeyFor returns the stable key for index: the GetKey result when it is set
// and the index is in range, otherwise the index itself.
func (v *Virtualizer) KeyFor(index int) string {
	if v.opts.GetKey != nil && index >= 0 && index < v.opts.Count {
		if key := v.opts.GetKey(index); key != "" {
			return key
		}
	}
	return strconv.Itoa(index)
}

// ItemAt returns the index of the item covering offset, clamped to the list.
// It returns -1 for an empty list.
func (v *Virtualizer) ItemAt(offset int) int {
	count := v.opts.Count
	if count == 0 {
		return -1
	}
	if offset <= 0 {
		return 0
	}
	var idx int
	if v.opts.EstimateSize == nil {
		idx = offset / v.opts.ItemSize
	} else {
		v.measure()
		idx = sort.Search(count, func(i int) bool { return v.starts[i+1] > offset })
	}
	return min(idx, count-1)
}

// Range returns the half-open index range [first, last) rendered for a
// viewport at offset with the given extent, overscan included.
func (v *Virtualizer) Range(offset, extent int) (first, last int) {
	count := v.opts.Count
	if count == 0 || extent <= 0 {
		return 0, 0
	}
	first = v.ItemAt(max(offset, 0))
	end := v.ItemAt(offset+extent-1) + 1
	first = max(0, first-v.opts.Overscan)
	last = min(count, end+v.opts.Overscan)
	return first, last
}

// VisibleItems yields the items intersecting the surface viewport plus
// overscan. The window is computed when iteration starts, so the sequence
// can be ranged over repeatedly and always reflects the current state.
func (v *Virtualizer) VisibleItems() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		if v.opts.Surface == nil {
			return
		}
		extent, ok := v.opts.Surface.Extent()
		if !ok {
			return
		}
		first, last := v.Range(v.opts.Surface.Offset(), extent)
		for i := first; i < last; i++ {
			if !yield(v.item(i)) {
				return
			}
		}
	}
}

func (v *Virtualizer) item(index int) Item {
	return Item{
		Index: index,
		Key:   v.KeyFor(index),
		Start: v.start(index),
		Size:  v.size(index),
	}
}

func (v *Virtualizer) start(index int) int {
	if v.opts.EstimateSize == nil {
		return index * v.opts.ItemSize
	}
	v.measure()
	return v.starts[index]
}

func (v *Virtualizer) size(index int) int {
	if v.opts.EstimateSize == nil {
		return v.opts.ItemSize
	}
	return max(1, v.opts.EstimateSize(index))
}

func (v *Virtualizer) measure() {
	if !v.dirty && len(v.starts) == v.opts.Count+1 {
		return
	}
	count := v.opts.Count
	if cap(v.starts) >= count+1 {
		v.starts = v.starts[:count+1]
	} else {
		v.starts = make([]int, count+1)
	}
	v.starts[0] = 0
	for i := 0; i < count; i++ {
		v.starts[i+1] = v.starts[i] + v.size(i)
	}
	v.dirty = false
}
