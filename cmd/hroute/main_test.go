package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"version"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "hroute version")
	assert.Empty(t, errOut.String())
}

func TestRun_ErrorIsFormatted(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"mutual", "--graph", missing}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(errOut.String(), "Error: failed to open graph file"), errOut.String())
	assert.Contains(t, errOut.String(), "Caused by:")
}

func TestRun_Route(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("A\nB\nA B road 2 4\n"), 0o600))

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"route", "A", "B", "-g", path}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "A----2->B\nhops=1 cost=2 alpha=0 cached=false via=A,B\n", out.String())
}
