//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// flag prints usage and exits 0 for -help
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "-source", "Help should list the source flag")
	require.True(t, strings.Contains(output, "-config"), "Help should list the config flag")
}

func TestHelpPopup(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, startWithFixture(tf), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Loaded 3 events"))

	tf.SendKeys(KeyHelp)
	require.True(t, tf.SeePlain("eventdeck Help"), "Help popup should open")
	require.True(t, tf.SeePlain("Show upcoming events"), "Help should list the filters")

	tf.SendKeys(KeyEsc)
	tf.Quit()
}
