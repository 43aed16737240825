package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engines.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEnginesConfig(t *testing.T) {
	path := writeConfig(t, `
default_transcriber: openai
default_downloader: web
engines:
  whisper_cpp:
    enabled: false
    settings:
      binary: /opt/whisper/main
      model: /opt/whisper/models/ggml-base.bin
  openai:
    enabled: true
`)

	cfg, err := LoadEnginesConfig(path)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "openai", cfg.DefaultTranscriber)
	assert.Equal(t, "web", cfg.DefaultDownloader)
	assert.Equal(t, "/opt/whisper/main", cfg.EngineSetting("whisper_cpp", "binary"))
	assert.Equal(t, "/opt/whisper/models/ggml-base.bin", cfg.EngineSetting("whisper_cpp", "model"))
	assert.False(t, cfg.IsEngineEnabled("whisper_cpp"))
	assert.True(t, cfg.IsEngineEnabled("openai"))
}

func TestLoadEnginesConfig_MissingFileIsOptional(t *testing.T) {
	cfg, err := LoadEnginesConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadEnginesConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadEnginesConfig("")

	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadEnginesConfig_InvalidYaml(t *testing.T) {
	path := writeConfig(t, "default_transcriber: [unterminated")

	_, err := LoadEnginesConfig(path)

	assert.Error(t, err)
}

func TestLoadEnginesConfig_UnknownEngineName(t *testing.T) {
	path := writeConfig(t, "default_transcriber: siri\n")

	_, err := LoadEnginesConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown default_transcriber")
}

func TestLoadEnginesConfig_MismatchedEngineKind(t *testing.T) {
	t.Run("downloader_as_transcriber", func(t *testing.T) {
		path := writeConfig(t, "default_transcriber: yt-dlp\n")

		_, err := LoadEnginesConfig(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown default_transcriber")
	})

	t.Run("transcriber_as_downloader", func(t *testing.T) {
		path := writeConfig(t, "default_downloader: openai\n")

		_, err := LoadEnginesConfig(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown default_downloader")
	})
}

func TestNilConfigAccessors(t *testing.T) {
	var cfg *EnginesConfig

	assert.Equal(t, "", cfg.EngineSetting("whisper_cpp", "binary"))
	assert.True(t, cfg.IsEngineEnabled("whisper_cpp"))
}

func TestEngineSetting_UnknownEngine(t *testing.T) {
	cfg := &EnginesConfig{Engines: map[string]EngineConfig{}}

	assert.Equal(t, "", cfg.EngineSetting("openai", "key"))
	assert.True(t, cfg.IsEngineEnabled("openai"))
}
