package registry

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Client fetches the override document over HTTP.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(rawURL string) *Client {
	return &Client{
		url: rawURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchOverrides implements the Fetcher interface.
func (c *Client) FetchOverrides(ctx context.Context) (*Overrides, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return nil, fmt.Errorf("invalid overrides url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	o, err := decodeOverrides(resp.Body)
	if err != nil {
		return nil, err
	}

	log.Printf("registry: fetched %d override entries from %s", o.Entries(), u.Redacted())
	return o, nil
}

// FileSource reads the override document from a local file on every fetch.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchOverrides implements the Fetcher interface.
func (f *FileSource) FetchOverrides(ctx context.Context) (*Overrides, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open overrides: %w", err)
	}
	defer file.Close()

	o, err := decodeOverrides(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}

	log.Printf("registry: read %d override entries from %s", o.Entries(), f.path)
	return o, nil
}
