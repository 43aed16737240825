package downloader

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// TikTok embeds its page state as JSON inside a script tag. The id has changed
// across frontend versions, so both known ids are tried.
var stateScriptIDs = []string{
	"SIGI_STATE",
	"__UNIVERSAL_DATA_FOR_REHYDRATION__",
}

const webUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// sigiState is the subset of the embedded page state the downloader needs.
type sigiState struct {
	ItemModule map[string]struct {
		Video struct {
			PlayAddr     string `json:"playAddr"`
			DownloadAddr string `json:"downloadAddr"`
		} `json:"video"`
	} `json:"ItemModule"`
}

// WebDownloader downloads videos by scraping the TikTok page for the embedded
// media URL, without any external binary.
type WebDownloader struct {
	client *http.Client
}

// NewWebDownloader creates a new WebDownloader.
func NewWebDownloader() *WebDownloader {
	return &WebDownloader{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Download resolves the media URL of the video page at url and saves the file
// to destPath.
func (d *WebDownloader) Download(url string, destPath string) error {
	stateJSON, err := d.getJsonScriptFromUrl(url)
	if err != nil {
		return err
	}

	mediaUrl, err := extractMediaUrl(stateJSON)
	if err != nil {
		return err
	}

	log.Printf("downloading media %v into %v\n", mediaUrl, destPath)
	return d.downloadFile(mediaUrl, destPath)
}

// getJsonScriptFromUrl fetches the video page and returns the embedded state
// JSON.
func (d *WebDownloader) getJsonScriptFromUrl(pageUrl string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, pageUrl, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", webUserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %v for %v", resp.Status, pageUrl)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	for _, id := range stateScriptIDs {
		script := doc.Find("script#" + id).First()
		if script.Length() > 0 && script.Text() != "" {
			return script.Text(), nil
		}
	}

	return "", fmt.Errorf("cannot find page state script in %v", pageUrl)
}

// extractMediaUrl picks the first playable media URL out of the page state.
func extractMediaUrl(stateJSON string) (string, error) {
	var state sigiState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return "", fmt.Errorf("deserialize page state failed: %w", err)
	}

	for _, item := range state.ItemModule {
		if item.Video.PlayAddr != "" {
			return item.Video.PlayAddr, nil
		}
		if item.Video.DownloadAddr != "" {
			return item.Video.DownloadAddr, nil
		}
	}

	return "", fmt.Errorf("no media URL in page state")
}

// downloadFile downloads the file from the given URL and saves it to the local
// file system.
func (d *WebDownloader) downloadFile(url string, filePath string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", webUserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %v for %v", resp.Status, url)
	}

	out, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("downloadFile failed for url %v, err: %w", url, err)
	}

	return nil
}
