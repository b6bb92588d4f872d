package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	datasim "github.com/ttrotto/DataSimulator"
)

func TestRootCommand_RunsPipeline(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--seed", "10", "--out", dir})
	require.NoError(t, cmd.Execute())

	for _, name := range []string{datasim.Figure1Name, datasim.Figure2Name, datasim.Figure3Name} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "figure %s missing", name)
		require.Greater(t, info.Size(), int64(0))
	}
}

func TestRootCommand_RejectsUnknownCodec(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--out", t.TempDir(), "--codec", "gzip"})
	require.Error(t, cmd.Execute())
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "datasim.yaml")
	require.NoError(t, os.WriteFile(configPath,
		[]byte("seed: 10\noutput_dir: "+dir+"\nsnapshot_codec: s2\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", configPath})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(dir, datasim.ElevationSnapshotName+".s2"))
	require.NoError(t, err)
}
