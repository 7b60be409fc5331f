package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sliderrors "github.com/alexisbeaulieu97/originslider/pkg/errors"
)

func TestParseScene(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
title: "Test Scene"
sliders:
  - id: gain
    min: -12
    max: 12
    value: 3
`

	invalidYAML := `version: [1, 0]
sliders:
  - id: broken
`

	unknownKey := `version: "1.0"
sliders:
  - id: gain
    min: 0
    max: 1
    colour: red
`

	missingSliders := `version: "1.0"
title: "Empty"
`

	invertedRange := `version: "1.0"
sliders:
  - id: gain
    min: 10
    max: -10
`

	badColor := `version: "1.0"
sliders:
  - id: gain
    min: 0
    max: 1
    style:
      thumb_color: reddish
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, scene *Scene, err error)
	}{
		{
			name:     "valid scene is parsed",
			contents: validYAML,
			assert: func(t *testing.T, scene *Scene, err error) {
				require.NoError(t, err)
				require.NotNil(t, scene)
				require.Equal(t, "Test Scene", scene.Title)
				require.Len(t, scene.Sliders, 1)
				require.Equal(t, "gain", scene.Sliders[0].BindName())
				require.Equal(t, 3.0, scene.Sliders[0].Value)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, scene *Scene, err error) {
				var parseErr *sliderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, scene *Scene, err error) {
				var parseErr *sliderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "missing sliders returns validation error",
			contents: missingSliders,
			assert: func(t *testing.T, scene *Scene, err error) {
				var validationErr *sliderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "sliders", validationErr.Field)
			},
		},
		{
			name:     "max below min is rejected",
			contents: invertedRange,
			assert: func(t *testing.T, scene *Scene, err error) {
				var validationErr *sliderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "sliders[0].max", validationErr.Field)
				require.Contains(t, validationErr.Message, "gtefield")
			},
		},
		{
			name:     "unparseable colors are rejected",
			contents: badColor,
			assert: func(t *testing.T, scene *Scene, err error) {
				var validationErr *sliderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "sliders[0].style.thumb_color", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempScene(t, tc.contents)
			scene, err := ParseScene(path)
			tc.assert(t, scene, err)
		})
	}
}

func TestParseSceneMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseScene(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *sliderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestParsePreviewScene(t *testing.T) {
	t.Parallel()

	scene, err := ParseScene(filepath.Join("testdata", "preview.yaml"))
	require.NoError(t, err)
	require.Equal(t, 60, scene.Width)
	require.True(t, scene.Labels)
	require.Len(t, scene.Sliders, 4)

	shared := 0
	for _, s := range scene.Sliders {
		if s.BindName() == "value1" {
			shared++
		}
	}
	require.Equal(t, 3, shared)

	style, err := scene.Sliders[3].Style.Resolve()
	require.NoError(t, err)
	require.Equal(t, 24.0, style.ThumbSize)
	require.Equal(t, "#0000ff33", style.GuideBarColor.String())
}

func writeTempScene(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
