package anchor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/vantage/internal/anchor"
	"github.com/five82/vantage/internal/virtual"
)

// surface is unclamped so the pixel scenario can be replayed exactly.
type surface struct {
	offset int
	sets   int
}

func (s *surface) Extent() (int, bool) { return 800, true }
func (s *surface) Offset() int         { return s.offset }
func (s *surface) SetOffset(offset int) {
	s.offset = offset
	s.sets++
}

func TestScenario_WithVirtualizer(t *testing.T) {
	s := &surface{}
	v := virtual.New(virtual.Options{Count: 5, ItemSize: 48, Overscan: 5, Surface: s})
	c := anchor.New(anchor.Options{ItemSize: 48, Threshold: anchor.DefaultThreshold, InitialCount: 5})

	assert.Equal(t, 240, v.TotalSize())

	v.SetCount(3)
	c.Observe(3, v)
	assert.Equal(t, 0, s.offset)

	before := s.sets
	v.SetCount(3)
	c.Observe(3, v)
	assert.Equal(t, before, s.sets, "identical length issues no offset call")

	v.SetCount(5)
	c.Observe(5, v)
	assert.Equal(t, 0, s.offset)

	v.ScrollToOffset(100)
	c.OnScroll(s.Offset())
	v.SetCount(8)
	c.Observe(8, v)
	assert.Equal(t, 244, s.offset)
}

func TestClampedViewport_ShrinkNeverDangles(t *testing.T) {
	vp := virtual.NewViewport()
	v := virtual.New(virtual.Options{Count: 100, ItemSize: 1, Surface: vp})
	c := anchor.New(anchor.Options{ItemSize: 1, InitialCount: 100})
	vp.SetExtent(10)
	vp.SetContentSize(v.TotalSize())

	v.ScrollToOffset(80)
	c.OnScroll(vp.Offset())

	v.SetCount(20)
	vp.SetContentSize(v.TotalSize())
	c.Observe(20, v)

	assert.Equal(t, 0, vp.Offset())
	first := -1
	for item := range v.VisibleItems() {
		first = item.Index
		break
	}
	assert.Equal(t, 0, first)
}
