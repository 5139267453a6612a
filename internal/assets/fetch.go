// internal/assets/fetch.go
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

var (
	ErrMissing = errors.New("asset missing")
	ErrFetch   = errors.New("asset fetch failed")
	ErrDecode  = errors.New("asset decode failed")
)

// LoadError describes a failed asset load. Kind is one of ErrMissing,
// ErrFetch or ErrDecode and matches with errors.Is.
type LoadError struct {
	Kind error
	URI  string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.URI)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.URI, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Fetcher makes an asset available as a local file. cleanup, when non-nil,
// removes anything Fetch created and is called when the asset is released.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) (localPath string, cleanup func(), err error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, uri string) (string, func(), error)

func (f FetcherFunc) Fetch(ctx context.Context, uri string) (string, func(), error) {
	return f(ctx, uri)
}

// DefaultFetcher reads local paths in place and downloads http(s) URLs to a
// temporary file. The renderer needs a path on disk to upload the model.
type DefaultFetcher struct {
	Client *http.Client
}

func (f DefaultFetcher) Fetch(ctx context.Context, uri string) (string, func(), error) {
	if isRemote(uri) {
		return f.download(ctx, uri)
	}
	p := strings.TrimPrefix(uri, "file://")
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, &LoadError{Kind: ErrMissing, URI: uri, Err: err}
		}
		return "", nil, &LoadError{Kind: ErrFetch, URI: uri, Err: err}
	}
	if info.IsDir() {
		return "", nil, &LoadError{Kind: ErrMissing, URI: uri, Err: errors.New("is a directory")}
	}
	return p, nil, nil
}

func (f DefaultFetcher) download(ctx context.Context, uri string) (string, func(), error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", nil, &LoadError{Kind: ErrFetch, URI: uri, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", nil, &LoadError{Kind: ErrFetch, URI: uri, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", nil, &LoadError{Kind: ErrMissing, URI: uri, Err: errors.New(resp.Status)}
	case resp.StatusCode != http.StatusOK:
		return "", nil, &LoadError{Kind: ErrFetch, URI: uri, Err: errors.New(resp.Status)}
	}

	tmp, err := os.CreateTemp("", "asset-*"+remoteExt(uri))
	if err != nil {
		return "", nil, &LoadError{Kind: ErrFetch, URI: uri, Err: err}
	}
	cleanup := func() { os.Remove(tmp.Name()) }
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, &LoadError{Kind: ErrFetch, URI: uri, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, &LoadError{Kind: ErrFetch, URI: uri, Err: err}
	}
	return tmp.Name(), cleanup, nil
}

func isRemote(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}

func remoteExt(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return path.Ext(u.Path)
}
