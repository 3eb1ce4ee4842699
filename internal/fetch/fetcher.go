// Package fetch downloads source pages through a permanent on-disk cache.
//
// A cache entry is the raw response body stored as <id>.bin. Once written it
// is never refreshed, so every later run reads the same bytes and decodes them
// the same way as the run that downloaded them.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"xzqh/internal/logging"
)

// ErrStatus marks a response whose status is outside 2xx.
var ErrStatus = errors.New("unexpected http status")

// Options configures a Fetcher.
type Options struct {
	CacheDir string
	Client   *http.Client
	// Delay is taken before every live request, never before a cache hit.
	Delay  time.Duration
	Logger *slog.Logger
}

// Fetcher returns page text for an id, downloading only on cache miss.
type Fetcher struct {
	dir    string
	client *http.Client
	delay  time.Duration
	logger *slog.Logger
}

// Page is the decoded text of one source page.
type Page struct {
	Text string
	// Cached reports whether the bytes came from an existing cache entry.
	Cached bool
}

// New creates the cache directory if needed and returns a Fetcher over it.
func New(opts Options) (*Fetcher, error) {
	if opts.CacheDir == "" {
		return nil, errors.New("fetch: cache dir is required")
	}
	if err := os.MkdirAll(opts.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache dir: %w", err)
	}
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		dir:    opts.CacheDir,
		client: client,
		delay:  opts.Delay,
		logger: logging.NewComponentLogger(opts.Logger, "fetch"),
	}, nil
}

// Path returns the cache entry path for id.
func (f *Fetcher) Path(id string) string {
	return filepath.Join(f.dir, id+".bin")
}

// Fetch returns the decoded page for id. A cached entry is read without
// touching the network; otherwise the page is downloaded once after the
// configured delay and persisted before it is decoded.
func (f *Fetcher) Fetch(ctx context.Context, id, url string) (Page, error) {
	raw, err := os.ReadFile(f.Path(id))
	if err == nil {
		return Page{Text: Decode(raw), Cached: true}, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return Page{}, fmt.Errorf("read cache %s: %w", id, err)
	}

	if err := f.wait(ctx); err != nil {
		return Page{}, err
	}
	f.logger.Info("downloading", logging.Args(logging.String("name", id), logging.String("url", url))...)

	raw, err = f.download(ctx, url)
	if err != nil {
		return Page{}, fmt.Errorf("download %s: %w", id, err)
	}
	if err := f.store(id, raw); err != nil {
		return Page{}, fmt.Errorf("write cache %s: %w", id, err)
	}
	return Page{Text: Decode(raw), Cached: false}, nil
}

func (f *Fetcher) wait(ctx context.Context) error {
	if f.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(f.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrStatus, res.Status)
	}
	return io.ReadAll(res.Body)
}

// store writes the entry through a temp file so a crash never leaves a
// truncated page behind as a permanent cache hit.
func (f *Fetcher) store(id string, raw []byte) error {
	tmp, err := os.CreateTemp(f.dir, id+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, f.Path(id)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
