package slider

import "math"

// State is everything Layout needs besides the style: the mirrored value,
// the clamped default, the range and the thumb offset cache.
type State struct {
	Value   float64
	Default float64
	Range   Range
	Cache   OffsetCache
}

// GuideBar is the always-visible rounded track spanning the drawable width.
type GuideBar struct {
	X            float64
	Width        float64
	Height       float64
	CornerRadius float64
	Color        Color
}

// TrackingBar is the highlighted segment between the default and the current
// value. X is relative to the container, like GuideBar.X.
type TrackingBar struct {
	X      float64
	Width  float64
	Height float64
	Color  Color
}

// Thumb is the draggable handle. Offset is relative to the start of the track.
type Thumb struct {
	Offset       float64
	Size         float64
	Color        Color
	ShadowRadius float64
	ShadowColor  Color
}

// HasShadow reports whether the thumb casts a visible shadow.
func (t Thumb) HasShadow() bool {
	return t.ShadowRadius > 0 && !t.ShadowColor.IsClear()
}

// RenderDescription is the output of a layout pass. Tracking and Thumb are
// nil when they must not be drawn.
type RenderDescription struct {
	ContainerWidth float64
	DrawableWidth  float64
	SidePadding    float64
	Background     Color

	Guide    GuideBar
	Tracking *TrackingBar
	Thumb    *Thumb

	DefaultOffset float64
	ValueOffset   float64
}

// Layout computes the render description for a container of the given width.
// It has no side effects: the cache is read, never written.
func Layout(state State, style Style, containerWidth float64) RenderDescription {
	width := DrawableWidth(containerWidth)
	if containerWidth < 0 || math.IsNaN(containerWidth) {
		containerWidth = 0
	}

	// The default was clamped when it was set.
	defaultOffset := offsetOf(state.Default, state.Range, width)
	valueOffset := ValueToOffset(state.Value, state.Range, width)

	desc := RenderDescription{
		ContainerWidth: containerWidth,
		DrawableWidth:  width,
		SidePadding:    SidePadding,
		Background:     style.Background,
		Guide: GuideBar{
			X:            SidePadding,
			Width:        width,
			Height:       style.GuideBarHeight,
			CornerRadius: style.GuideBarCornerRadius,
			Color:        style.GuideBarColor,
		},
		DefaultOffset: defaultOffset,
		ValueOffset:   valueOffset,
	}

	diff := valueOffset - defaultOffset
	if isFinite(diff) && diff != 0 {
		desc.Tracking = &TrackingBar{
			X:      SidePadding + math.Min(defaultOffset, valueOffset),
			Width:  math.Abs(diff),
			Height: style.TrackingBarHeight,
			Color:  style.TrackingBarColor,
		}
	}

	if width > 0 {
		offset := valueOffset
		if cached, ok := state.Cache.Offset(); ok {
			offset = cached
		}
		desc.Thumb = &Thumb{
			Offset:       offset,
			Size:         style.ThumbSize,
			Color:        style.ThumbColor,
			ShadowRadius: style.Shadow,
			ShadowColor:  style.ShadowColor,
		}
	}

	return desc
}
