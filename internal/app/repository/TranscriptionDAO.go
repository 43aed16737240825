package repository

import (
	"time"

	"tiktok-transcript/internal/app/model"
)

// TranscriptionDAO records pipeline runs and reads them back for the history
// and export commands.
type TranscriptionDAO interface {
	Close() error

	RecordRun(sourceURL, videoFileName, audioFileName string, audioDuration int, transcription string,
		createdAt time.Time, hasError int, errorMessage string) error

	GetRecent(limit int) ([]model.Transcription, error)

	GetAll() ([]model.Transcription, error)
}
