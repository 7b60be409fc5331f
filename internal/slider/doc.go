// Package slider implements a horizontal slider whose origin can sit anywhere
// inside its range.
//
// The package is split the same way the control is:
//
//   - Geometry: ValueToOffset, OffsetToValue and DrawableWidth convert between
//     domain values and horizontal offsets inside the track.
//   - Interaction: (*Slider).DragTo turns pointer positions into values and
//     reports them through the OnChange callback.
//   - Layout: Layout is a pure function from State, Style and a container
//     width to a RenderDescription that a renderer can draw.
//
// The host owns the bound value. A Slider mirrors the last value it was given
// (SetValue) or produced (DragTo) and never treats that mirror as canonical:
//
//	s := slider.New(-30, 50, value).
//		WithDefault(20).
//		OnChange(func(v float64) { value = v })
//	s.Resize(float64(width))
//	desc := s.Layout()
//
// Everything here runs on the caller's goroutine; nothing blocks.
package slider
