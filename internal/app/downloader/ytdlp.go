package downloader

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
)

// YtDlpDownloader downloads videos with the yt-dlp binary.
type YtDlpDownloader struct {
	binaryPath string
}

// NewYtDlpDownloader creates a new YtDlpDownloader. An empty binaryPath falls
// back to "yt-dlp" on the PATH.
func NewYtDlpDownloader(binaryPath string) *YtDlpDownloader {
	if binaryPath == "" {
		binaryPath = "yt-dlp"
	}
	return &YtDlpDownloader{binaryPath: binaryPath}
}

// Download fetches url into destPath as an mp4.
func (d *YtDlpDownloader) Download(url string, destPath string) error {
	args := []string{
		"--quiet",
		"--no-warnings",
		"-f", "mp4",
		"-o", destPath,
		url,
	}

	cmd := exec.Command(d.binaryPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Printf("downloading %s with %s\n", url, d.binaryPath)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("yt-dlp error: %v, stderr: %s", err, stderr.String())
	}

	return nil
}
