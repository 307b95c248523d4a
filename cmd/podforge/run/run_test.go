package runcmder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceRequiresExactlyOneInput(t *testing.T) {
	for name, cmder := range map[string]*runCommander{
		"none":         {},
		"url and text": {url: "https://example.com", text: "hi"},
		"all three":    {url: "https://example.com", text: "hi", file: "x.txt"},
	} {
		_, err := cmder.source()
		assert.Error(t, err, name)
	}
}

func TestSourceFromURL(t *testing.T) {
	src, err := (&runCommander{url: "https://example.com/post"}).source()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/post", src.URL)
}

func TestSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("# Notes"), 0o644))

	src, err := (&runCommander{file: path}).source()
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", src.Filename)
	assert.Equal(t, []byte("# Notes"), src.Data)
	assert.Contains(t, src.ContentType, "text/plain")
}

func TestSourceFromText(t *testing.T) {
	src, err := (&runCommander{text: "inline content"}).source()
	require.NoError(t, err)
	assert.Equal(t, "inline content", src.Text)
}
