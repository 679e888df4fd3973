package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHttpClient(t *testing.T) {
	c, err := NewHttpClient(Config{})
	require.NoError(t, err)
	assert.NotNil(t, c)

	c, err = NewHttpClient(Config{TimeoutSec: 5, InsecureSkipVerify: true})
	require.NoError(t, err)
	assert.NotNil(t, c)

	_, err = NewHttpClient(Config{TimeoutSec: -1})
	assert.Error(t, err)
}

func TestHeaderConversion(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Add("X-Multi", "a")
	h.Add("X-Multi", "b")

	fh := toFHeader(h)
	assert.Equal(t, []string{"application/json"}, fh["Content-Type"])
	assert.Equal(t, []string{"a", "b"}, fh["X-Multi"])

	back := toHeader(fh)
	assert.Equal(t, h, back)
}

func TestDo_RoundTrip(t *testing.T) {
	type seen struct {
		method      string
		path        string
		contentType string
		body        string
	}
	got := make(chan seen, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got <- seen{r.Method, r.URL.Path, r.Header.Get("Content-Type"), string(raw)}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"filename":"song.mp3"}}`))
	}))
	defer srv.Close()

	c, err := NewHttpClient(Config{})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/submit", strings.NewReader(`{"video_url":"https://youtu.be/dQw4w9WgXcQ"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	s := <-got
	assert.Equal(t, http.MethodPost, s.method)
	assert.Equal(t, "/submit", s.path)
	assert.Equal(t, "application/json", s.contentType)
	assert.Equal(t, `{"video_url":"https://youtu.be/dQw4w9WgXcQ"}`, s.body)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "201 Created", resp.Status)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Same(t, req, resp.Request)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"filename":"song.mp3"}}`, string(body))
}

func TestDo_ContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewHttpClient(Config{})
	require.NoError(t, err)

	t.Run("already cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, srv.URL+"/submit", strings.NewReader(`{}`))
		require.NoError(t, err)

		_, err = c.Do(req)
		assert.Error(t, err)
	})

	t.Run("cancelled in flight", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, srv.URL+"/submit", strings.NewReader(`{}`))
		require.NoError(t, err)

		start := time.Now()
		_, err = c.Do(req)
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}
