package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
)

// maxMessageFileBytes bounds a message file fetched over HTTP.
const maxMessageFileBytes = 8 << 20

// HTTPLoadRequest configures LoadURL.
type HTTPLoadRequest struct {
	URL    string
	Client *http.Client
	// Name overrides the file name taken from the URL path. The language
	// and format are derived from it.
	Name string
}

// LoadURL fetches a message file over HTTP(S) and loads it.
func (c *Catalog) LoadURL(ctx context.Context, req HTTPLoadRequest) error {
	if req.URL == "" {
		return fmt.Errorf("catalog http: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("catalog http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("catalog http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	name := req.Name
	if name == "" {
		name = path.Base(httpReq.URL.Path)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("catalog http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog http: status %s", resp.Status)
	}
	buf, err := io.ReadAll(io.LimitReader(resp.Body, maxMessageFileBytes+1))
	if err != nil {
		return fmt.Errorf("catalog http: read body: %w", err)
	}
	if len(buf) > maxMessageFileBytes {
		return fmt.Errorf("catalog http: %s exceeds %d bytes", req.URL, maxMessageFileBytes)
	}
	return c.LoadBytes(buf, name)
}
