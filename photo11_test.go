package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildOnEvents(t *testing.T) {
	dir := newPublicDir(t, abcEntries())
	conf := testConf(dir)

	w := watcher.New()
	builds := make(chan error)
	done := make(chan struct{})
	go func() {
		rebuildOnEvents(w, func() error {
			err := renderSite(conf, false)
			builds <- err
			return err
		})
		close(done)
	}()

	waitForBuild := func() error {
		t.Helper()
		select {
		case err := <-builds:
			return err
		case <-time.After(5 * time.Second):
			require.FailNow(t, "no rebuild after event")
			return nil
		}
	}

	w.TriggerEvent(watcher.Write, nil)
	require.NoError(t, waitForBuild())
	assert.FileExists(t, filepath.Join(dir, "a.html"))
	assert.FileExists(t, filepath.Join(dir, indexFileName))

	// A failed rebuild doesn't stop the loop.
	require.NoError(t, os.WriteFile(dataFilePath(dir), []byte("["), 0o664))
	w.TriggerEvent(watcher.Write, nil)
	assert.Error(t, waitForBuild())

	writeEntries(t, dir, append(abcEntries(), imageEntry("January 4, 2024", "Fourth", "d.jpg", "")))
	w.TriggerEvent(watcher.Create, nil)
	require.NoError(t, waitForBuild())
	assert.FileExists(t, filepath.Join(dir, "d.html"))

	w.Closed <- struct{}{}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop still running after close")
	}
}
