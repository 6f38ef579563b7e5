package openapi

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source locates an OpenAPI document: a file path, an fs.FS entry, or an
// HTTP(S) endpoint.
type Source interface {
	Location() string
	read(ctx context.Context, opts LoaderOptions) ([]byte, error)
}

// LoaderOptions configures document fetching. The zero value reads files
// from the operating system and refuses HTTP sources, keeping offline use
// the default.
type LoaderOptions struct {
	// FileSystem resolves file sources when set; nil means the OS.
	FileSystem fs.FS

	// HTTPClient fetches URL sources. Nil disables them unless
	// AllowHTTPFallback is set.
	HTTPClient *http.Client

	// AllowHTTPFallback permits http.DefaultClient when no client is given.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetches.
	RequestTimeout time.Duration
}

// Fetch reads the document bytes behind src.
func Fetch(ctx context.Context, src Source, opts LoaderOptions) ([]byte, error) {
	if src == nil {
		return nil, fmt.Errorf("openapi: nil source")
	}
	return src.read(ctx, opts)
}

// SourceFor picks a source kind from the raw spelling: URLs load over HTTP,
// everything else is a file path.
func SourceFor(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("openapi: empty source")
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return SourceFromURL(raw)
	}
	return fileSource{path: raw}, nil
}

// SourceFromFile returns a Source pointing at a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: path}
}

// SourceFromURL validates the URL and returns an HTTP source.
func SourceFromURL(raw string) (Source, error) {
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("openapi: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }

func (s fileSource) read(_ context.Context, opts LoaderOptions) ([]byte, error) {
	if opts.FileSystem != nil {
		data, err := fs.ReadFile(opts.FileSystem, s.path)
		if err != nil {
			return nil, fmt.Errorf("openapi: read %s: %w", s.path, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", s.path, err)
	}
	return data, nil
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }

func (s urlSource) read(ctx context.Context, opts LoaderOptions) ([]byte, error) {
	client := opts.HTTPClient
	if client == nil {
		if !opts.AllowHTTPFallback {
			return nil, fmt.Errorf("openapi: HTTP sources disabled, no client configured")
		}
		client = http.DefaultClient
	}
	if opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.RequestTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.raw, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi: fetch %s: %w", s.raw, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openapi: fetch %s: unexpected status %s", s.raw, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi: read response body: %w", err)
	}
	return data, nil
}
