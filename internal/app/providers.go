package app

import (
	"log"

	"tiktok-transcript/internal/app/api"
	"tiktok-transcript/internal/app/api/openai"
	"tiktok-transcript/internal/app/api/openai/whisper"
	"tiktok-transcript/internal/app/api/whisper_cpp"
	"tiktok-transcript/internal/app/audio"
	"tiktok-transcript/internal/app/clipboard"
	appconfig "tiktok-transcript/internal/app/config"
	"tiktok-transcript/internal/app/downloader"
	"tiktok-transcript/internal/app/paste"
	"tiktok-transcript/internal/app/repository"
	"tiktok-transcript/internal/app/repository/sqlite"
	"tiktok-transcript/internal/config"
)

// provideEnginesConfig loads the optional engines.yaml. A broken file is
// reported but does not stop the CLI; env configuration still applies.
func provideEnginesConfig() *appconfig.EnginesConfig {
	engines, err := appconfig.LoadEnginesConfig(appconfig.FindEnginesConfig())
	if err != nil {
		log.Printf("ignoring engines config: %v\n", err)
		return nil
	}
	return engines
}

func provideDownloader(cfg *config.Config, engines *appconfig.EnginesConfig) downloader.Downloader {
	engine := cfg.DownloadEngine
	if engines != nil && engines.DefaultDownloader != "" {
		engine = engines.DefaultDownloader
	}

	switch engine {
	case config.DownloaderWeb:
		return downloader.NewWebDownloader()
	default:
		binary := cfg.YtDlpBinary
		if s := engines.EngineSetting(config.DownloaderYtDlp, "binary"); s != "" {
			binary = s
		}
		return downloader.NewYtDlpDownloader(binary)
	}
}

func provideExtractor(cfg *config.Config) *audio.FFmpegExtractor {
	return audio.NewFFmpegExtractor(cfg.FFmpegBinary, cfg.FFprobeBinary)
}

// provideTranscriber selects the speech engine. whisper.cpp is the default:
// it works without an API key, and an unconfigured binary simply degrades to
// the pipeline's placeholder transcript.
func provideTranscriber(cfg *config.Config, engines *appconfig.EnginesConfig) api.Transcriber {
	engine := cfg.TranscriberEngine
	if engines != nil && engines.DefaultTranscriber != "" {
		engine = engines.DefaultTranscriber
	}

	switch engine {
	case config.TranscriberOpenAI:
		return whisper.NewRemoteTranscriber(openai.GetClient(cfg.OpenAIKey))
	default:
		binary := cfg.WhisperCppBinary
		if s := engines.EngineSetting(config.TranscriberWhisperCpp, "binary"); s != "" {
			binary = s
		}
		model := cfg.WhisperCppModel
		if s := engines.EngineSetting(config.TranscriberWhisperCpp, "model"); s != "" {
			model = s
		}
		return whisper_cpp.NewLocalTranscriber(binary, model)
	}
}

func provideClipboard() clipboard.Clipboard {
	return clipboard.NewSystemClipboard()
}

func providePasteClient(cfg *config.Config) paste.Client {
	return paste.NewHTTPClient(cfg.PasteEndpoint)
}

func provideTranscriptionDAO(cfg *config.Config) repository.TranscriptionDAO {
	return sqlite.NewSQLiteDB(cfg.HistoryDBPath)
}
