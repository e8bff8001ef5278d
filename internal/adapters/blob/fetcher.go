package blob

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/metrics"
)

// StreamProtocol is the protocol backends use for binary resources
const StreamProtocol = "stream"

const (
	defaultTimeout    = 30 * time.Second
	defaultRetryCount = 2
)

// Fetcher resolves backend stream names to URLs and downloads them
type Fetcher struct {
	baseURL string
	client  *resty.Client
}

// NewFetcher creates a Fetcher resolving names against baseURL
func NewFetcher(baseURL string) *Fetcher {
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("User-Agent", "xrf-shell")

	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// SetBaseURL changes the base URL used by ConvertFileSrc
func (f *Fetcher) SetBaseURL(baseURL string) {
	f.baseURL = strings.TrimRight(baseURL, "/")
}

// ConvertFileSrc returns the URL serving name over protocol
func (f *Fetcher) ConvertFileSrc(name, protocol string) string {
	return fmt.Sprintf("%s/%s/%s", f.baseURL, protocol, url.PathEscape(name))
}

// Fetch downloads the resource at rawURL
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	logging.Logger.Debug("Fetching blob", "url", rawURL)

	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", rawURL, resp.Status())
	}

	body := resp.Body()
	metrics.RecordBlobFetch(len(body))
	logging.Logger.Debug("Blob fetched", "url", rawURL, "bytes", len(body), "duration", resp.Time())
	return body, nil
}
