package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRun_WatchRerunsOnChange(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSuite), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stdout, stderr syncBuffer
	done := make(chan int, 1)
	go func() {
		done <- run(ctx, []string{"-suite", path, "-watch"}, &stdout, &stderr)
	}()

	require.Eventually(t, func() bool {
		return strings.Count(stdout.String(), "=== Suite: cli ===") == 1
	}, 5*time.Second, 20*time.Millisecond)

	// Give the watcher time to register before editing.
	time.Sleep(200 * time.Millisecond)
	updated := strings.Replace(testSuite, "name: cli", "name: cli-edited", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "=== Suite: cli-edited ===")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, exitOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestParseFlags_WatchNeedsSuite(t *testing.T) {
	clearEnv(t)
	_, err := parseFlags([]string{"-watch", "1"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "-watch requires -suite")
}
