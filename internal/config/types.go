package config

import (
	"github.com/alexisbeaulieu97/originslider/internal/slider"
)

// MaxWidth is the widest container a scene or the render command accepts.
// It must match the max tag on Scene.Width.
const MaxWidth = 1000

// Scene is a scene file: a titled set of sliders shown together by the demo.
type Scene struct {
	Version        string         `yaml:"version" validate:"required,semver"`
	Title          string         `yaml:"title,omitempty" validate:"max=200"`
	Width          int            `yaml:"width,omitempty" validate:"gte=0,max=1000"`
	Labels         bool           `yaml:"labels,omitempty"`
	ClampWriteBack bool           `yaml:"clamp_write_back,omitempty"`
	Sliders        []SliderConfig `yaml:"sliders" validate:"required,min=1,dive"`
}

// SliderConfig describes one slider and the binding it reads and writes.
type SliderConfig struct {
	ID        string      `yaml:"id" validate:"required,slider_id"`
	Label     string      `yaml:"label,omitempty" validate:"max=100"`
	Bind      string      `yaml:"bind,omitempty" validate:"omitempty,slider_id"`
	Min       float64     `yaml:"min" validate:"finite"`
	Max       float64     `yaml:"max" validate:"finite,gtefield=Min"`
	Default   float64     `yaml:"default,omitempty" validate:"finite"`
	Value     float64     `yaml:"value,omitempty" validate:"finite"`
	Increment float64     `yaml:"increment,omitempty" validate:"finite,gte=0"`
	Snap      bool        `yaml:"snap,omitempty"`
	Style     StyleConfig `yaml:"style,omitempty"`
}

// StyleConfig overrides parts of slider.DefaultStyle. Colors accept
// "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "clear", "white" and "black".
type StyleConfig struct {
	ThumbSize            *float64 `yaml:"thumb_size,omitempty" validate:"omitempty,finite,gte=0"`
	ThumbColor           string   `yaml:"thumb_color,omitempty" validate:"omitempty,slider_color"`
	GuideBarCornerRadius *float64 `yaml:"guide_bar_corner_radius,omitempty" validate:"omitempty,finite,gte=0"`
	GuideBarColor        string   `yaml:"guide_bar_color,omitempty" validate:"omitempty,slider_color"`
	GuideBarHeight       *float64 `yaml:"guide_bar_height,omitempty" validate:"omitempty,finite,gte=0"`
	TrackingBarColor     string   `yaml:"tracking_bar_color,omitempty" validate:"omitempty,slider_color"`
	TrackingBarHeight    *float64 `yaml:"tracking_bar_height,omitempty" validate:"omitempty,finite,gte=0"`
	Shadow               *float64 `yaml:"shadow,omitempty" validate:"omitempty,finite,gte=0"`
	ShadowColor          string   `yaml:"shadow_color,omitempty" validate:"omitempty,slider_color"`
	BackgroundColor      string   `yaml:"background_color,omitempty" validate:"omitempty,slider_color"`
}

// BindName returns the binding the slider shares with others, its ID when
// unset.
func (c SliderConfig) BindName() string {
	if c.Bind != "" {
		return c.Bind
	}
	return c.ID
}

// DisplayLabel returns the label shown above the slider.
func (c SliderConfig) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.ID
}

// Build constructs the slider described by c.
func (c SliderConfig) Build(clampWriteBack bool) (*slider.Slider, error) {
	style, err := c.Style.Resolve()
	if err != nil {
		return nil, err
	}

	policy := slider.ClampRenderOnly
	if clampWriteBack {
		policy = slider.ClampWriteBack
	}

	return slider.New(c.Min, c.Max, c.Value).
		WithDefault(c.Default).
		WithIncrement(c.Increment).
		WithSnapping(c.Snap).
		WithClampPolicy(policy).
		WithStyle(style), nil
}

// Resolve applies the overrides on top of slider.DefaultStyle.
func (s StyleConfig) Resolve() (slider.Style, error) {
	style := slider.DefaultStyle()

	sizes := []struct {
		src *float64
		dst *float64
	}{
		{s.ThumbSize, &style.ThumbSize},
		{s.GuideBarCornerRadius, &style.GuideBarCornerRadius},
		{s.GuideBarHeight, &style.GuideBarHeight},
		{s.TrackingBarHeight, &style.TrackingBarHeight},
		{s.Shadow, &style.Shadow},
	}
	for _, size := range sizes {
		if size.src != nil {
			*size.dst = *size.src
		}
	}

	colors := []struct {
		src string
		dst *slider.Color
	}{
		{s.ThumbColor, &style.ThumbColor},
		{s.GuideBarColor, &style.GuideBarColor},
		{s.TrackingBarColor, &style.TrackingBarColor},
		{s.ShadowColor, &style.ShadowColor},
		{s.BackgroundColor, &style.Background},
	}
	for _, color := range colors {
		if color.src == "" {
			continue
		}
		parsed, err := slider.ParseColor(color.src)
		if err != nil {
			return slider.Style{}, err
		}
		*color.dst = parsed
	}

	return style, nil
}
