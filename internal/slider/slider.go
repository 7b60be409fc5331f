package slider

// ClampPolicy decides what happens when the host hands the slider a value
// outside its range.
type ClampPolicy int

const (
	// ClampRenderOnly draws the thumb at the nearest bound and leaves the
	// host value untouched.
	ClampRenderOnly ClampPolicy = iota
	// ClampWriteBack additionally reports the clamped value through OnChange.
	ClampWriteBack
)

// String returns the policy name used in scene files and logs.
func (p ClampPolicy) String() string {
	switch p {
	case ClampWriteBack:
		return "write_back"
	default:
		return "render_only"
	}
}

// Slider is one custom-origin slider instance. Construction parameters are
// fixed for its lifetime; only the mirrored value and the container width
// change.
type Slider struct {
	rng       Range
	def       float64
	increment float64
	snap      bool
	clamp     ClampPolicy
	style     Style
	onChange  func(float64)

	value          float64
	containerWidth float64
	cache          OffsetCache
}

// New creates a slider over [minValue, maxValue] showing value. The default value is 0
// clamped into the range until WithDefault says otherwise.
func New(minValue, maxValue, value float64) *Slider {
	r := Range{Min: minValue, Max: maxValue}
	return &Slider{
		rng:   r,
		def:   r.Clamp(0),
		style: DefaultStyle(),
		value: value,
	}
}

// WithDefault sets the origin of the tracking bar, clamped into the range.
func (s *Slider) WithDefault(v float64) *Slider {
	s.def = s.rng.Clamp(v)
	return s
}

// WithIncrement records the step size. It only affects values when snapping
// is enabled.
func (s *Slider) WithIncrement(step float64) *Slider {
	if step < 0 {
		step = 0
	}
	s.increment = step
	return s
}

// WithSnapping enables quantizing drag results to the increment.
func (s *Slider) WithSnapping(enabled bool) *Slider {
	s.snap = enabled
	return s
}

// WithClampPolicy sets how out-of-range host values are treated.
func (s *Slider) WithClampPolicy(p ClampPolicy) *Slider {
	s.clamp = p
	return s
}

// WithStyle replaces the visual parameters.
func (s *Slider) WithStyle(style Style) *Slider {
	s.style = style
	return s
}

// OnChange registers the callback invoked synchronously with every value the
// slider produces.
func (s *Slider) OnChange(fn func(float64)) *Slider {
	s.onChange = fn
	return s
}

// Range returns the slider's range.
func (s *Slider) Range() Range { return s.rng }

// Default returns the clamped default value.
func (s *Slider) Default() float64 { return s.def }

// Increment returns the configured step, 0 when continuous.
func (s *Slider) Increment() float64 { return s.increment }

// Snapping reports whether drag results are quantized.
func (s *Slider) Snapping() bool { return s.snap }

// ClampPolicy returns the out-of-range policy.
func (s *Slider) ClampPolicy() ClampPolicy { return s.clamp }

// Style returns the visual parameters.
func (s *Slider) Style() Style { return s.style }

// Value returns the mirrored host value.
func (s *Slider) Value() float64 { return s.value }

// ContainerWidth returns the last width passed to Resize.
func (s *Slider) ContainerWidth() float64 { return s.containerWidth }

// DrawableWidth returns the current track width.
func (s *Slider) DrawableWidth() float64 { return DrawableWidth(s.containerWidth) }

// Cache returns a copy of the thumb offset cache.
func (s *Slider) Cache() OffsetCache { return s.cache }

// State returns the input for Layout.
func (s *Slider) State() State {
	return State{
		Value:   s.value,
		Default: s.def,
		Range:   s.rng,
		Cache:   s.cache,
	}
}

// Resize records a new container width. The first usable width snaps the
// thumb into place; later changes resync it.
func (s *Slider) Resize(containerWidth float64) {
	if containerWidth == s.containerWidth && s.cache.Synced() {
		return
	}
	s.containerWidth = containerWidth
	width := s.DrawableWidth()
	if s.cache.Initialize(s.value, s.rng, width) {
		return
	}
	s.cache.Resync(s.value, s.rng, width)
}

// SetValue is the host writing the bound value. The cache is resynced from
// the restricted value; under ClampWriteBack an out-of-range value is replaced
// by the restricted one and reported through OnChange.
func (s *Slider) SetValue(v float64) {
	clamped := s.rng.Restrict(v)
	if s.clamp == ClampWriteBack && v != clamped {
		s.value = clamped
		s.notify(clamped)
	} else {
		s.value = v
	}
	s.syncCache()
}

// DragTo handles a drag start or drag move at pointerX, with the track
// beginning at trackOriginX, and returns the new value. The value is reported
// through OnChange on every call.
func (s *Slider) DragTo(pointerX, trackOriginX float64) float64 {
	dragX := pointerX - trackOriginX
	v := OffsetToValue(dragX, s.rng, s.DrawableWidth())
	if s.snap {
		v = Snap(v, s.rng, s.increment)
	}
	s.value = v
	s.notify(v)
	s.syncCache()
	return v
}

// Layout runs the pure layout function against the current state.
func (s *Slider) Layout() RenderDescription {
	return Layout(s.State(), s.style, s.containerWidth)
}

func (s *Slider) syncCache() {
	width := s.DrawableWidth()
	if !s.cache.Synced() {
		s.cache.Initialize(s.value, s.rng, width)
		return
	}
	s.cache.Resync(s.value, s.rng, width)
}

func (s *Slider) notify(v float64) {
	if s.onChange != nil {
		s.onChange(v)
	}
}
