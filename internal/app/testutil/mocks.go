package testutil

import (
	"os"
	"sync"
	"time"

	"tiktok-transcript/internal/app/model"
)

// MockDownloader is a configurable download engine for tests. When Err is nil
// it writes Data to the destination path.
type MockDownloader struct {
	mu sync.Mutex

	Data []byte
	Err  error

	CallCount int
	LastURL   string
	LastDest  string
}

func NewMockDownloader() *MockDownloader {
	return &MockDownloader{Data: []byte("mock video bytes")}
}

func (m *MockDownloader) Download(url string, destPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastURL = url
	m.LastDest = destPath

	if m.Err != nil {
		return m.Err
	}
	return os.WriteFile(destPath, m.Data, 0o644)
}

// MockExtractor is a configurable media engine for tests.
type MockExtractor struct {
	mu sync.Mutex

	Data []byte
	Err  error

	CallCount int
	LastVideo string
	LastAudio string
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{Data: []byte("mock audio bytes")}
}

func (m *MockExtractor) ExtractAudio(videoPath string, audioPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastVideo = videoPath
	m.LastAudio = audioPath

	if m.Err != nil {
		return m.Err
	}
	return os.WriteFile(audioPath, m.Data, 0o644)
}

// MockTranscriber is a configurable speech engine for tests.
type MockTranscriber struct {
	mu sync.Mutex

	Response string
	Err      error

	CallCount int
	LastInput string
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{Response: "This is a mock transcription result."}
}

func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastInput = inputFilePath

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockClipboard records copied text and can simulate a broken integration.
type MockClipboard struct {
	mu sync.Mutex

	Err    error
	Copied []string
}

func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

func (m *MockClipboard) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Copied = append(m.Copied, text)
	return nil
}

// MockPasteClient simulates the remote paste service.
type MockPasteClient struct {
	mu sync.Mutex

	Response string
	Err      error

	CallCount int
	LastBody  []byte
}

func NewMockPasteClient() *MockPasteClient {
	return &MockPasteClient{Response: "https://paste.example/abc"}
}

func (m *MockPasteClient) Publish(body []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastBody = body

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockTranscriptionDAO is an in-memory run history for tests.
type MockTranscriptionDAO struct {
	mu sync.Mutex

	Err     error
	Records []model.Transcription
	Closed  bool
}

func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{}
}

func (m *MockTranscriptionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

func (m *MockTranscriptionDAO) RecordRun(sourceURL, videoFileName, audioFileName string, audioDuration int,
	transcription string, createdAt time.Time, hasError int, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.Records = append(m.Records, model.Transcription{
		ID:            len(m.Records) + 1,
		SourceURL:     sourceURL,
		VideoFileName: videoFileName,
		AudioFileName: audioFileName,
		AudioDuration: audioDuration,
		Transcription: transcription,
		CreatedAt:     createdAt,
		ErrorMessage:  errorMessage,
	})
	return nil
}

func (m *MockTranscriptionDAO) GetRecent(limit int) ([]model.Transcription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if limit > len(m.Records) {
		limit = len(m.Records)
	}
	out := make([]model.Transcription, limit)
	copy(out, m.Records[len(m.Records)-limit:])
	return out, nil
}

func (m *MockTranscriptionDAO) GetAll() ([]model.Transcription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]model.Transcription, len(m.Records))
	copy(out, m.Records)
	return out, nil
}
