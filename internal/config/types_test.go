package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/originslider/internal/slider"
)

func TestStyleResolveKeepsDefaults(t *testing.T) {
	t.Parallel()

	style, err := StyleConfig{}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, slider.DefaultStyle(), style)
}

func TestStyleResolveOverrides(t *testing.T) {
	t.Parallel()

	style, err := Default().Sliders[3].Style.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 24.0, style.ThumbSize)
	assert.Equal(t, "#ff0000", style.ThumbColor.String())
	assert.Equal(t, 6.0, style.GuideBarHeight)
	assert.Equal(t, 6.0, style.TrackingBarHeight)
	assert.Equal(t, 2.0, style.Shadow)
	assert.True(t, style.Background.IsClear())
	assert.Equal(t, "#808080", style.ShadowColor.String())
}

func TestSliderConfigBuild(t *testing.T) {
	t.Parallel()

	cfg := SliderConfig{ID: "gain", Min: 50, Max: 100, Value: 60, Default: 0, Increment: 5, Snap: true}
	s, err := cfg.Build(true)
	require.NoError(t, err)

	assert.Equal(t, slider.Range{Min: 50, Max: 100}, s.Range())
	assert.Equal(t, 50.0, s.Default())
	assert.Equal(t, 60.0, s.Value())
	assert.Equal(t, 5.0, s.Increment())
	assert.True(t, s.Snapping())
	assert.Equal(t, slider.ClampWriteBack, s.ClampPolicy())
}

func TestSliderConfigNames(t *testing.T) {
	t.Parallel()

	cfg := SliderConfig{ID: "gain"}
	assert.Equal(t, "gain", cfg.BindName())
	assert.Equal(t, "gain", cfg.DisplayLabel())

	cfg.Bind = "master"
	cfg.Label = "Gain"
	assert.Equal(t, "master", cfg.BindName())
	assert.Equal(t, "Gain", cfg.DisplayLabel())
}
