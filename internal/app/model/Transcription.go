package model

import "time"

// Transcription is one recorded pipeline run.
type Transcription struct {
	ID            int
	SourceURL     string
	VideoFileName string
	AudioFileName string
	AudioDuration int
	Transcription string
	CreatedAt     time.Time
	ErrorMessage  string
}
