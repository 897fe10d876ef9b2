package pixel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// RemoteFS reads sprites over HTTP. The browser build uses it to fetch
// images from the page's origin.
type RemoteFS struct {
	Base   string // URL prefix, e.g. "" for page-relative or "http://host/"
	Client *http.Client
}

// NewRemoteFS creates a RemoteFS fetching below base.
func NewRemoteFS(base string) *RemoteFS {
	return &RemoteFS{
		Base:   base,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Open is not supported; use ReadFile (fs.ReadFile picks it up).
func (r *RemoteFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: errors.ErrUnsupported}
}

// ReadFile fetches name. Any non-200 response is fs.ErrNotExist.
func (r *RemoteFS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}

	url := name
	if r.Base != "" {
		url = strings.TrimSuffix(r.Base, "/") + "/" + name
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &fs.PathError{
			Op:   "read",
			Path: name,
			Err:  fmt.Errorf("%w: %s", fs.ErrNotExist, resp.Status),
		}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return b, nil
}
