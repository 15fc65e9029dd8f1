package export

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteZip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "internal", "api"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "pkg"), 0755))

	files := map[string]string{
		"main.go":                "package main\n",
		"internal/api/router.go": "package api\n",
		".env":                   "SECRET=1\n",
		"megahand.db":            "binary",
		"app.log":                "noise",
		".git/HEAD":              "ref: refs/heads/main",
		"node_modules/pkg/x.js":  "junk",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
	}

	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, root))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range reader.File {
		names[f.Name] = true
	}

	require.True(t, names["main.go"])
	require.True(t, names["internal/api/router.go"])

	require.False(t, names[".env"])
	require.False(t, names["megahand.db"])
	require.False(t, names["app.log"])
	require.False(t, names[".git/HEAD"])
	require.False(t, names["node_modules/pkg/x.js"])
}

func TestWriteZip_ContentRoundTrip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte("hello"), 0644))

	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, root))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 1)

	rc, err := reader.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "hello", string(content))
}
