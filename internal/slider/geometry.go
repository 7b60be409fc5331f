package slider

import "math"

// SidePadding is the fixed horizontal inset applied on both sides of the
// container before the track is laid out.
const SidePadding = 16.0

// Range is the closed interval of values a slider accepts.
type Range struct {
	Min float64
	Max float64
}

// Clamp restricts v to the range. It is applied to defaults and drag
// results. An inverted range (Min > Max) always yields Max.
func (r Range) Clamp(v float64) float64 {
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Restrict restricts v to the range the way the thumb is drawn. It only
// differs from Clamp on an inverted range, where it always yields Min.
func (r Range) Restrict(v float64) float64 {
	return math.Max(math.Min(v, r.Max), r.Min)
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Degenerate reports whether the range collapses to a single point.
func (r Range) Degenerate() bool {
	return r.Span() == 0
}

// DrawableWidth returns the track width available inside a container of the
// given width, floored at zero.
func DrawableWidth(containerWidth float64) float64 {
	w := containerWidth - 2*SidePadding
	if w <= 0 || math.IsNaN(w) {
		return 0
	}
	return w
}

// ValueToOffset maps a value to its horizontal offset inside a track of the
// given width. Out of range values map to the nearest end of the track.
// A degenerate range, an unusable width or a NaN value map to 0.
func ValueToOffset(value float64, r Range, width float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return offsetOf(r.Restrict(value), r, width)
}

// offsetOf maps v without restricting it first.
func offsetOf(v float64, r Range, width float64) float64 {
	if !usableWidth(width) || r.Degenerate() || math.IsNaN(v) {
		return 0
	}
	offset := (v - r.Min) / r.Span() * width
	if !isFinite(offset) {
		return 0
	}
	return offset
}

// OffsetToValue maps an offset inside a track of the given width back to a
// value, clamped into the range. A degenerate range or an unusable width
// yields the lower bound.
func OffsetToValue(offset float64, r Range, width float64) float64 {
	if !usableWidth(width) || r.Degenerate() || math.IsNaN(offset) {
		return r.Clamp(r.Min)
	}
	return r.Clamp(offset/width*r.Span() + r.Min)
}

// Snap quantizes v to the nearest Min + k*increment and clamps the result.
// A non-positive increment returns v clamped.
func Snap(v float64, r Range, increment float64) float64 {
	if increment <= 0 || !isFinite(increment) || math.IsNaN(v) {
		return r.Clamp(v)
	}
	steps := math.Round((v - r.Min) / increment)
	return r.Clamp(r.Min + steps*increment)
}

func usableWidth(w float64) bool {
	return w > 0 && isFinite(w)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
