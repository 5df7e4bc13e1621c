//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigFileCatalogPath(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	catalogPath, err := tf.WriteFile("items.yaml", `
items:
  - id: s1
    title: soldering station
    category: Tools
`)
	require.NoError(t, err)

	configPath, err := tf.WriteFile("config.toml", `
catalog_path = "`+catalogPath+`"

[ui]
grid_columns = 1
`)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-c", configPath, "-q", "solder"))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("soldering station"), "Catalog should come from the config file")
}

func TestBrokenConfigFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	configPath, err := tf.WriteFile("config.toml", "grid_columns = [")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-c", configPath, "-q", "pi"))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("power pi version 2"), "Embedded catalog should still load")

	// The failure is logged, not shown
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(filepath.Join(tf.workspace, "gadgetfind.log"))
		return err == nil && len(data) > 0
	}, 3*time.Second, 50*time.Millisecond)
}
