package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"TRANSCRIBER_ENGINE", "DOWNLOAD_ENGINE", "YTDLP_BINARY",
		"FFMPEG_BINARY", "FFPROBE_BINARY", "PASTE_ENDPOINT", "OPENAI_API_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, TranscriberWhisperCpp, cfg.TranscriberEngine)
	assert.Equal(t, DownloaderYtDlp, cfg.DownloadEngine)
	assert.Equal(t, "yt-dlp", cfg.YtDlpBinary)
	assert.Equal(t, "ffmpeg", cfg.FFmpegBinary)
	assert.Equal(t, "ffprobe", cfg.FFprobeBinary)
	assert.Equal(t, DefaultPasteEndpoint, cfg.PasteEndpoint)
	assert.NotEmpty(t, cfg.HistoryDBPath)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("TRANSCRIBER_ENGINE", TranscriberOpenAI)
	t.Setenv("DOWNLOAD_ENGINE", DownloaderWeb)
	t.Setenv("YTDLP_BINARY", "/opt/bin/yt-dlp")
	t.Setenv("PASTE_ENDPOINT", "https://paste.internal")
	t.Setenv("OPENAI_API_KEY", " sk-1234567890abcdef ")

	cfg := FromEnv()

	assert.Equal(t, TranscriberOpenAI, cfg.TranscriberEngine)
	assert.Equal(t, DownloaderWeb, cfg.DownloadEngine)
	assert.Equal(t, "/opt/bin/yt-dlp", cfg.YtDlpBinary)
	assert.Equal(t, "https://paste.internal", cfg.PasteEndpoint)
	assert.Equal(t, "sk-1234567890abcdef", cfg.OpenAIKey)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(cfg *Config)
		expectError   bool
		errorContains string
	}{
		{
			name:   "whisper_cpp_without_binary_is_valid",
			mutate: func(cfg *Config) {},
		},
		{
			name: "openai_with_key",
			mutate: func(cfg *Config) {
				cfg.TranscriberEngine = TranscriberOpenAI
				cfg.OpenAIKey = "sk-1234567890abcdef"
			},
		},
		{
			name: "openai_without_key",
			mutate: func(cfg *Config) {
				cfg.TranscriberEngine = TranscriberOpenAI
			},
			expectError:   true,
			errorContains: "OPENAI_API_KEY",
		},
		{
			name: "openai_with_malformed_key",
			mutate: func(cfg *Config) {
				cfg.TranscriberEngine = TranscriberOpenAI
				cfg.OpenAIKey = "not-a-key"
			},
			expectError:   true,
			errorContains: "must start with 'sk-'",
		},
		{
			name: "unknown_transcriber_engine",
			mutate: func(cfg *Config) {
				cfg.TranscriberEngine = "siri"
			},
			expectError:   true,
			errorContains: "unknown transcriber engine",
		},
		{
			name: "unknown_download_engine",
			mutate: func(cfg *Config) {
				cfg.DownloadEngine = "carrier-pigeon"
			},
			expectError:   true,
			errorContains: "unknown download engine",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				TranscriberEngine: TranscriberWhisperCpp,
				DownloadEngine:    DownloaderYtDlp,
			}
			tc.mutate(cfg)

			err := cfg.Validate()

			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
