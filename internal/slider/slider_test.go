package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50.0, New(50, 100, 60).Default(), "implicit 0 is clamped to the lower bound")
	assert.Equal(t, 50.0, New(-30, 50, 0).WithDefault(80).Default())
	assert.Equal(t, 10.0, New(-100, 100, 0).WithDefault(10).Default())
}

func TestDragToReportsEveryMove(t *testing.T) {
	t.Parallel()

	var reported []float64
	s := New(0, 100, 0).OnChange(func(v float64) { reported = append(reported, v) })
	s.Resize(300)

	origin := SidePadding
	got := s.DragTo(origin+200, origin)
	assert.InDelta(t, 74.6268656716, got, 1e-9)

	s.DragTo(origin+500, origin)
	s.DragTo(origin-20, origin)

	require.Len(t, reported, 3)
	assert.InDelta(t, 74.6268656716, reported[0], 1e-9)
	assert.Equal(t, 100.0, reported[1])
	assert.Equal(t, 0.0, reported[2])
	assert.Equal(t, 0.0, s.Value())

	offset, ok := s.Cache().Offset()
	require.True(t, ok)
	assert.Equal(t, 0.0, offset)
}

func TestDragToIgnoresIncrementUnlessSnapping(t *testing.T) {
	t.Parallel()

	s := New(0, 100, 0).WithIncrement(10)
	s.Resize(300)
	assert.InDelta(t, 74.6268656716, s.DragTo(216, 16), 1e-9)

	s.WithSnapping(true)
	assert.Equal(t, 70.0, s.DragTo(216, 16))
}

func TestDragOnZeroWidthYieldsLowerBound(t *testing.T) {
	t.Parallel()

	s := New(-10, 10, 5)
	s.Resize(20)
	assert.Equal(t, -10.0, s.DragTo(100, 16))
	assert.Nil(t, s.Layout().Thumb)
}

func TestResizeSnapsThenResyncs(t *testing.T) {
	t.Parallel()

	s := New(0, 100, 50)
	s.Resize(20)
	assert.False(t, s.Cache().Synced())

	s.Resize(300)
	offset, ok := s.Cache().Offset()
	require.True(t, ok)
	assert.Equal(t, 134.0, offset)

	s.Resize(132)
	offset, _ = s.Cache().Offset()
	assert.Equal(t, 50.0, offset)
}

func TestSetValueRenderOnlyLeavesHostValue(t *testing.T) {
	t.Parallel()

	calls := 0
	s := New(0, 100, 0).OnChange(func(float64) { calls++ })
	s.Resize(300)

	s.SetValue(140)
	assert.Equal(t, 140.0, s.Value())
	assert.Zero(t, calls)

	offset, _ := s.Cache().Offset()
	assert.Equal(t, 268.0, offset)
}

func TestSetValueWriteBackReportsClampedValue(t *testing.T) {
	t.Parallel()

	var written []float64
	s := New(0, 100, 0).
		WithClampPolicy(ClampWriteBack).
		OnChange(func(v float64) { written = append(written, v) })
	s.Resize(300)

	s.SetValue(-12)
	assert.Equal(t, []float64{0}, written)
	assert.Equal(t, 0.0, s.Value())

	s.SetValue(42)
	assert.Equal(t, []float64{0}, written, "in-range writes are not echoed")
	assert.Equal(t, 42.0, s.Value())
}

func TestSliderLayoutFirstPassSnaps(t *testing.T) {
	t.Parallel()

	s := New(-30, 50, 0).WithDefault(50)
	desc := s.Layout()
	assert.Nil(t, desc.Thumb, "no width yet")

	s.Resize(300)
	desc = s.Layout()
	require.NotNil(t, desc.Thumb)
	assert.Equal(t, 100.5, desc.Thumb.Offset)
	require.NotNil(t, desc.Tracking)
	assert.Equal(t, SidePadding+100.5, desc.Tracking.X)
	assert.Equal(t, 167.5, desc.Tracking.Width)
}

func TestClampPolicyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "render_only", ClampRenderOnly.String())
	assert.Equal(t, "write_back", ClampWriteBack.String())
}
