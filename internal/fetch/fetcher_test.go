package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/axgle/mahonia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, dir string) *Fetcher {
	t.Helper()
	f, err := New(Options{CacheDir: dir})
	require.NoError(t, err)
	return f
}

func TestFetchDownloadsOnceThenServesCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<table><tr><td>110101</td><td>东城区</td></tr></table>"))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "nested", "cache")
	f := newTestFetcher(t, dir)

	page, err := f.Fetch(context.Background(), "2023", srv.URL)
	require.NoError(t, err)
	assert.False(t, page.Cached)
	assert.Contains(t, page.Text, "东城区")

	raw, err := os.ReadFile(filepath.Join(dir, "2023.bin"))
	require.NoError(t, err)
	assert.Equal(t, page.Text, string(raw))

	again, err := f.Fetch(context.Background(), "2023", srv.URL)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, page.Text, again.Text)
	assert.EqualValues(t, 1, hits.Load())
}

func TestFetchCacheHitSkipsNetwork(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1999.bin"), []byte("cached page"), 0o644))

	f := newTestFetcher(t, dir)
	page, err := f.Fetch(context.Background(), "1999", "http://127.0.0.1:1/unreachable")
	require.NoError(t, err)
	assert.True(t, page.Cached)
	assert.Equal(t, "cached page", page.Text)
}

func TestFetchErrorStatusLeavesNoCacheEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := newTestFetcher(t, dir)

	_, err := f.Fetch(context.Background(), "2001", srv.URL)
	require.ErrorIs(t, err, ErrStatus)
	assert.Contains(t, err.Error(), "404")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchWaitsBeforeDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f, err := New(Options{CacheDir: t.TempDir(), Delay: 50 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	_, err = f.Fetch(context.Background(), "a", srv.URL)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	start = time.Now()
	_, err = f.Fetch(context.Background(), "a", srv.URL)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestFetchDelayHonoursCancellation(t *testing.T) {
	f, err := New(Options{CacheDir: t.TempDir(), Delay: time.Hour})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Fetch(ctx, "a", "http://127.0.0.1:1/")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRequiresCacheDir(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestLockIsExclusive(t *testing.T) {
	dir := t.TempDir()
	first := newTestFetcher(t, dir)
	second := newTestFetcher(t, dir)

	unlock, err := first.Lock()
	require.NoError(t, err)

	_, err = second.Lock()
	require.ErrorIs(t, err, ErrLocked)

	require.NoError(t, unlock())
	unlockAgain, err := second.Lock()
	require.NoError(t, err)
	require.NoError(t, unlockAgain())
}

func TestDecodeUTF8PassesThrough(t *testing.T) {
	assert.Equal(t, "北京市", Decode([]byte("北京市")))
}

func TestDecodeDropsInvalidBytes(t *testing.T) {
	raw := append([]byte("110101"), 0xff, 0xfe)
	raw = append(raw, []byte("东城区")...)
	assert.Equal(t, "110101东城区", Decode(raw))
}

func TestDecodeDeclaredGBK(t *testing.T) {
	body := mahonia.NewEncoder("gbk").ConvertString("<td>东城区</td>")
	page := `<html><head><meta http-equiv="Content-Type" content="text/html; charset=gb2312"></head><body>` + body + `</body></html>`

	text := Decode([]byte(page))
	assert.Contains(t, text, "<td>东城区</td>")
}
