package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}

func TestEnsureDirectory(t *testing.T) {
	t.Run("creates_nested_directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b", "c")

		require.NoError(t, EnsureDirectory(dir))
		assert.DirExists(t, dir)
	})

	t.Run("existing_directory_is_fine", func(t *testing.T) {
		dir := t.TempDir()

		assert.NoError(t, EnsureDirectory(dir))
	})
}

func TestReadOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("  transcribed text \n"), 0o644))

	content, err := ReadOutputFile(path)

	require.NoError(t, err)
	assert.Equal(t, "transcribed text", content)
}

func TestReadOutputFile_Missing(t *testing.T) {
	_, err := ReadOutputFile(filepath.Join(t.TempDir(), "missing.txt"))

	assert.Error(t, err)
}

func TestReplaceExtension(t *testing.T) {
	tests := []struct {
		path     string
		ext      string
		expected string
	}{
		{path: "/tmp/video.mp4", ext: ".wav", expected: "/tmp/video.wav"},
		{path: "video.mp4", ext: ".mp3", expected: "video.mp3"},
		{path: "/tmp/archive.tar.gz", ext: ".wav", expected: "/tmp/archive.tar.wav"},
		{path: "noext", ext: ".wav", expected: "noext.wav"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ReplaceExtension(tt.path, tt.ext))
	}
}
