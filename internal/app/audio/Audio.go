package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os/exec"

	"tiktok-transcript/internal/app/model"
)

// Extractor defines a media engine that derives an audio file from a video
// file.
type Extractor interface {
	ExtractAudio(videoPath string, audioPath string) error
}

// FFmpegExtractor extracts audio tracks with the ffmpeg binary.
type FFmpegExtractor struct {
	ffmpegPath  string
	ffprobePath string
}

// NewFFmpegExtractor creates a new FFmpegExtractor. Empty paths fall back to
// the binaries on the PATH.
func NewFFmpegExtractor(ffmpegPath, ffprobePath string) *FFmpegExtractor {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &FFmpegExtractor{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath}
}

// ExtractAudio converts the video's audio track to 16kHz mono WAV, the format
// whisper engines expect.
func (e *FFmpegExtractor) ExtractAudio(videoPath string, audioPath string) error {
	log.Printf("extracting audio from %s\n", videoPath)

	cmd := exec.Command(e.ffmpegPath, "-y", "-i", videoPath,
		"-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", audioPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}

	log.Printf("audio extraction completed: '%s'\n", audioPath)
	return nil
}

// GetAudioDuration returns the duration of an audio file in whole seconds via
// ffprobe.
func (e *FFmpegExtractor) GetAudioDuration(filePath string) (int, error) {
	cmd := exec.Command(e.ffprobePath, "-v", "quiet", "-print_format", "json",
		"-show_format", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}

	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return 0, err
	}

	hasAudio := false
	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" {
			hasAudio = true
			break
		}
	}
	if !hasAudio {
		return 0, fmt.Errorf("no audio stream in %s", filePath)
	}

	return int(math.Round(probeOutput.Format.Duration)), nil
}
