package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	require.Equal(t, "originslider 1.2.3\ncommit: abcdef1\nbuilt: 2026-10-19\n", buf.String())
}

func TestRootHelpListsCommands(t *testing.T) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.True(t, strings.HasPrefix(output, root.Short), "help opens with the description")
	for _, name := range []string{"demo", "render", "validate", "version"} {
		require.Contains(t, output, name)
	}
	require.Contains(t, output, "--log-file")
}
