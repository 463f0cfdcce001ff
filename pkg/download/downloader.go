// Package download fetches a chart image URL and writes the response body
// verbatim to a local file.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// DownloadError represents a failure to download or persist a chart image.
type DownloadError struct {
	URL string
	Msg string
	Err error // Wrapped error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chart download error for '%s': %s: %v", e.URL, e.Msg, e.Err)
	}
	return fmt.Sprintf("chart download error for '%s': %s", e.URL, e.Msg)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Downloader fetches URLs over HTTPS with bounded retries.
type Downloader struct {
	client *http.Client
}

// New returns a Downloader whose transport retries transient failures
// (connection errors, 429 and 5xx responses) up to retryMax times with
// exponential backoff.
func New(retryMax int, timeout time.Duration) *Downloader {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil

	return &Downloader{client: rc.StandardClient()}
}

// NewWithClient returns a Downloader using the given HTTP client. Intended for
// tests.
func NewWithClient(client *http.Client) *Downloader {
	return &Downloader{client: client}
}

// Fetch performs a GET against url and writes the raw response body to path,
// overwriting any existing file. Nothing is written unless the response is
// fully read. The bytes are not inspected: no content type, size, or checksum
// verification.
func (d *Downloader) Fetch(ctx context.Context, url string, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &DownloadError{URL: url, Msg: "could not build request", Err: err}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return &DownloadError{URL: url, Msg: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DownloadError{URL: url, Msg: fmt.Sprintf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &DownloadError{URL: url, Msg: "could not read response body", Err: err}
	}

	if err := os.WriteFile(path, body, 0o644); err != nil {
		return &DownloadError{URL: url, Msg: fmt.Sprintf("could not write file '%s'", path), Err: err}
	}

	return nil
}
