package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"tiktok-transcript/internal/app/util/files"
)

// Engine selection values accepted by TRANSCRIBER_ENGINE / DOWNLOAD_ENGINE.
const (
	TranscriberOpenAI     = "openai"
	TranscriberWhisperCpp = "whisper_cpp"

	DownloaderYtDlp = "yt-dlp"
	DownloaderWeb   = "web"
)

// DefaultPasteEndpoint is where the share wrapper publishes transcripts.
const DefaultPasteEndpoint = "https://paste.rs"

// Config holds all environment-driven settings for the pipeline.
type Config struct {
	// Engine selection
	TranscriberEngine string
	DownloadEngine    string

	// External binaries
	YtDlpBinary      string
	FFmpegBinary     string
	FFprobeBinary    string
	WhisperCppBinary string
	WhisperCppModel  string

	// Remote services
	OpenAIKey     string
	PasteEndpoint string

	// Run history
	HistoryDBPath string
}

// LoadEnv loads environment variables from a .env file if one exists. Missing
// files are not an error: variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// FromEnv builds a Config from the current environment, applying defaults for
// everything unset.
func FromEnv() *Config {
	return &Config{
		TranscriberEngine: getEnvOrDefault("TRANSCRIBER_ENGINE", TranscriberWhisperCpp),
		DownloadEngine:    getEnvOrDefault("DOWNLOAD_ENGINE", DownloaderYtDlp),
		YtDlpBinary:       getEnvOrDefault("YTDLP_BINARY", "yt-dlp"),
		FFmpegBinary:      getEnvOrDefault("FFMPEG_BINARY", "ffmpeg"),
		FFprobeBinary:     getEnvOrDefault("FFPROBE_BINARY", "ffprobe"),
		WhisperCppBinary:  getEnvOrDefault("WHISPER_CPP_BINARY", ""),
		WhisperCppModel:   getEnvOrDefault("WHISPER_CPP_MODEL", ""),
		OpenAIKey:         strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		PasteEndpoint:     getEnvOrDefault("PASTE_ENDPOINT", DefaultPasteEndpoint),
		HistoryDBPath:     getEnvOrDefault("HISTORY_DB_PATH", defaultHistoryDBPath()),
	}
}

// Validate checks that the selected engines are usable with the rest of the
// configuration. Unknown engine names fail fast here rather than deep inside
// the pipeline.
func (c *Config) Validate() error {
	switch c.TranscriberEngine {
	case TranscriberOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("transcriber engine %q requires OPENAI_API_KEY", c.TranscriberEngine)
		}
		if !strings.HasPrefix(c.OpenAIKey, "sk-") {
			return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
	case TranscriberWhisperCpp:
		// Binary and model may be absent: the pipeline degrades to its
		// placeholder transcript when the engine cannot run.
	default:
		return fmt.Errorf("unknown transcriber engine: %q", c.TranscriberEngine)
	}

	switch c.DownloadEngine {
	case DownloaderYtDlp, DownloaderWeb:
	default:
		return fmt.Errorf("unknown download engine: %q", c.DownloadEngine)
	}

	return nil
}

// InitializeConfig loads the environment and returns the validated Config.
// This is the main entry point for configuration loading.
func InitializeConfig() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultHistoryDBPath() string {
	return filepath.Join(files.GetDefaultDataDir(), "transcripts.db")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
