package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliderColorValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	type sample struct {
		Color string `validate:"slider_color"`
	}

	for _, ok := range []string{"#fff", "#ffffff", "#0000ff33", "clear", "white"} {
		require.NoError(t, v.Struct(sample{Color: ok}), ok)
	}
	for _, bad := range []string{"", "blue", "#12", "#zzzzzz"} {
		require.Error(t, v.Struct(sample{Color: bad}), bad)
	}
}

func TestSliderIDValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	type sample struct {
		ID string `validate:"slider_id"`
	}

	require.NoError(t, v.Struct(sample{ID: "value_1-a"}))
	require.Error(t, v.Struct(sample{ID: "Value1"}))
}
