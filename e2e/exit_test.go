//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, startWithFixture(tf), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("eventdeck"), "Should show eventdeck title")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	t.Logf("Sending 'q' to quit application...")
	tf.Quit()

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "Process should exit cleanly with 'q'")
	case <-time.After(1500 * time.Millisecond):
		t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
		tf.SendCtrlC()
		select {
		case <-done:
			t.Fatal("Process only exited after Ctrl+C")
		case <-time.After(2 * time.Second):
			t.Fatal("Process did not exit")
		}
	}
}
