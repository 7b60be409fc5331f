package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	sliderrors "github.com/alexisbeaulieu97/originslider/pkg/errors"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	err := root.Execute()
	return ansi.Strip(out.String()), err
}

func TestRenderCommandScenarios(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "origin at range start",
			args: []string{"render", "--min", "0", "--max", "100", "--value", "50", "--width", "300"},
			want: []string{"drawable width: 268", "value offset:   134", "tracking:       [0, 134]", "thumb offset:   134"},
		},
		{
			name: "origin clamped to range end",
			args: []string{"render", "--min", "-30", "--max", "50", "--default", "80", "--value", "0", "--width", "300"},
			want: []string{"default:        50", "default offset: 268", "value offset:   100.5", "tracking:       [100.5, 268]"},
		},
		{
			name: "range above zero",
			args: []string{"render", "--min", "50", "--max", "100", "--value", "60", "--width", "300"},
			want: []string{"value offset:   53.6"},
		},
		{
			name: "container smaller than padding",
			args: []string{"render", "--value", "80", "--width", "20"},
			want: []string{"drawable width: 0", "tracking:       none", "thumb:          none"},
		},
		{
			name: "drag to a track offset",
			args: []string{"render", "--width", "300", "--drag", "200"},
			want: []string{"value:          74.62", "thumb offset:   200"},
		},
		{
			name: "drag with snapping",
			args: []string{"render", "--width", "300", "--drag", "200", "--increment", "10", "--snap"},
			want: []string{"value:          70"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := executeRoot(t, tc.args...)
			require.NoError(t, err)
			for _, want := range tc.want {
				require.Contains(t, out, want)
			}
		})
	}
}

func TestRenderCommandLabels(t *testing.T) {
	t.Parallel()

	out, err := executeRoot(t, "render", "--min", "-30", "--max", "50", "--width", "40", "--labels", "--report=false")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "-30.00"))
	require.True(t, strings.HasSuffix(strings.TrimRight(lines[1], " "), "50.00"))
}

func TestRenderCommandRejectsInvertedRange(t *testing.T) {
	t.Parallel()

	_, err := executeRoot(t, "render", "--min", "10", "--max", "0", "--width", "80")
	var flagErr *sliderrors.FlagError
	require.ErrorAs(t, err, &flagErr)
	require.Equal(t, "max", flagErr.Flag)
}

func TestRenderCommandRejectsWidthOutOfBounds(t *testing.T) {
	t.Parallel()

	for _, width := range []string{"-3", "1001", "2000000000"} {
		_, err := executeRoot(t, "render", "--width", width)
		var flagErr *sliderrors.FlagError
		require.ErrorAs(t, err, &flagErr, "width %s", width)
		require.Equal(t, "width", flagErr.Flag)
	}

	_, err := executeRoot(t, "render", "--width", "1000", "--report=false")
	require.NoError(t, err)
}

func TestTerminalWidthFallsBack(t *testing.T) {
	t.Parallel()

	require.Equal(t, fallbackWidth, terminalWidth(&bytes.Buffer{}))
}
