package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFib(t *testing.T) {
	fib := newFib(nil)
	assert.Equal(t, uint64(0), fib(0))
	assert.Equal(t, uint64(1), fib(1))
	assert.Equal(t, uint64(102334155), fib(40))
}

func TestNewLevenshtein(t *testing.T) {
	lev := newLevenshtein(nil)
	assert.Equal(t, 3, lev("kitten", "sitting"))
	assert.Equal(t, 0, lev("same", "same"))
	assert.Equal(t, 3, lev("", "abc"))
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\nmemo:\n  shards: 2\n"), 0o600))

	assert.NoError(t, run(path, 10, []string{"1", "one"}))
	assert.Error(t, run(filepath.Join(t.TempDir(), "missing.yaml"), 10, nil))
}
