//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"tiktok-transcript/internal/app/audio"
	"tiktok-transcript/internal/app/pipeline"
	"tiktok-transcript/internal/config"
)

func InitializePipeline(cfg *config.Config) *pipeline.Pipeline {
	wire.Build(
		pipeline.NewPipeline,
		provideEnginesConfig,
		provideDownloader,
		provideExtractor,
		provideTranscriber,
		provideClipboard,
		providePasteClient,
		provideTranscriptionDAO,
		wire.Bind(new(audio.Extractor), new(*audio.FFmpegExtractor)),
	)
	return &pipeline.Pipeline{}
}
