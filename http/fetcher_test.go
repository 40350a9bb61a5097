package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/urldoc"
	urldochttp "github.com/fwojciec/urldoc/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("writes response body to destination", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		dst := filepath.Join(t.TempDir(), "page.html")
		fetcher := urldochttp.NewFetcher()

		result, err := fetcher.Fetch(context.Background(), server.URL, dst)
		require.NoError(t, err)

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(data))
		assert.Equal(t, dst, result.Path)
		assert.Equal(t, server.URL, result.URL)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Equal(t, "text/html", result.ContentType)
		assert.Equal(t, int64(len(data)), result.Bytes)
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("new"))
		}))
		defer server.Close()

		dst := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(dst, []byte("old content that is longer"), 0644))

		_, err := urldochttp.NewFetcher().Fetch(context.Background(), server.URL, dst)
		require.NoError(t, err)

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("sends browser user agent by default", func(t *testing.T) {
		t.Parallel()

		agents := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agents <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		_, err := urldochttp.NewFetcher().Fetch(context.Background(), server.URL, filepath.Join(t.TempDir(), "a.html"))
		require.NoError(t, err)
		assert.Equal(t, urldochttp.DefaultUserAgent, <-agents)
	})

	t.Run("respects custom user agent option", func(t *testing.T) {
		t.Parallel()

		agents := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agents <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := urldochttp.NewFetcher(urldochttp.WithUserAgent("urldoc-test/1.0"))
		_, err := fetcher.Fetch(context.Background(), server.URL, filepath.Join(t.TempDir(), "a.html"))
		require.NoError(t, err)
		assert.Equal(t, "urldoc-test/1.0", <-agents)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := urldochttp.NewFetcher(urldochttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL, filepath.Join(t.TempDir(), "a.html"))
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := urldochttp.NewFetcher().Fetch(ctx, server.URL, filepath.Join(t.TempDir(), "a.html"))
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := urldochttp.NewFetcher(urldochttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page", filepath.Join(t.TempDir(), "a.html"))
		require.Error(t, err)
	})

	t.Run("returns error for non-2xx status codes without writing", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		dst := filepath.Join(t.TempDir(), "missing.html")
		_, err := urldochttp.NewFetcher().Fetch(context.Background(), server.URL, dst)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")

		_, statErr := os.Stat(dst)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("returns error when destination is not writable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		dst := filepath.Join(t.TempDir(), "no-such-dir", "a.html")
		_, err := urldochttp.NewFetcher().Fetch(context.Background(), server.URL, dst)
		require.Error(t, err)
	})
}

// Compile-time verification that Fetcher implements urldoc.Fetcher
var _ urldoc.Fetcher = (*urldochttp.Fetcher)(nil)
