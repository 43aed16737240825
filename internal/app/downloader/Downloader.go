package downloader

// Downloader defines a download engine that fetches a remote video into a
// local file at destPath.
type Downloader interface {
	Download(url string, destPath string) error
}
