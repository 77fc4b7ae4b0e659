// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeURL(t *testing.T) {
	for _, ref := range []string{"quad.vert", "shaders/blur.frag", "https://example.com/a.glsl", "../x"} {
		assert.True(t, LooksLikeURL(ref), ref)
	}
	for _, src := range []string{"void main() {}", "precision mediump float;\n", "a\tb"} {
		assert.False(t, LooksLikeURL(src), src)
	}
}

func newFetcher(t *testing.T, opts ...Option) *Fetcher {
	t.Helper()
	f, err := NewFetcher(configFor(opts))
	require.NoError(t, err)
	return f
}

func TestFetchHTTPCached(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/shaders/quad.vert" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("void main() {}"))
	}))
	defer srv.Close()

	f := newFetcher(t, WithBaseURL(srv.URL+"/shaders/"), WithHTTPClient(srv.Client()))
	ctx := context.Background()
	src, err := f.Fetch(ctx, "quad.vert")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src)

	src, err = f.Fetch(ctx, "quad.vert")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	_, err = f.Fetch(ctx, "missing.frag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchUncached(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("src"))
	}))
	defer srv.Close()

	f := newFetcher(t, WithSourceCacheSize(0), WithHTTPClient(srv.Client()))
	for i := 0; i < 3; i++ {
		_, err := f.Fetch(context.Background(), srv.URL+"/a.frag")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	f := newFetcher(t, WithHTTPClient(srv.Client()))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := f.Fetch(ctx, srv.URL+"/slow.vert")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchFS(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/quad.vert": {Data: []byte("attribute vec2 p;")},
	}
	f := newFetcher(t, WithFS(fsys))
	src, err := f.Fetch(context.Background(), "shaders/quad.vert")
	require.NoError(t, err)
	assert.Equal(t, "attribute vec2 p;", src)

	src, err = f.Fetch(context.Background(), "/shaders/../shaders/quad.vert")
	require.NoError(t, err)
	assert.Equal(t, "attribute vec2 p;", src)

	_, err = f.Fetch(context.Background(), "shaders/none.vert")
	assert.Error(t, err)
}

func TestFetchOS(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("drive letters parse as URL schemes")
	}
	dir := t.TempDir()
	name := filepath.Join(dir, "blit.frag")
	require.NoError(t, os.WriteFile(name, []byte("void main() {}"), 0o644))

	f := newFetcher(t)
	src, err := f.Fetch(context.Background(), filepath.ToSlash(name))
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src)
}

func TestFetchUnsupportedScheme(t *testing.T) {
	f := newFetcher(t)
	_, err := f.Fetch(context.Background(), "ftp://example.com/a.vert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}

func TestFetchAsync(t *testing.T) {
	f := newFetcher(t, WithFS(fstest.MapFS{"a.vert": {Data: []byte("a")}}))
	type result struct {
		src string
		err error
	}
	done := make(chan result, 1)
	f.FetchAsync("a.vert", func(src string, err error) {
		done <- result{src, err}
	})
	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, "a", r.src)
	case <-time.After(5 * time.Second):
		t.Fatal("FetchAsync did not complete")
	}
}

func TestFetchImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	f := newFetcher(t, WithFS(fstest.MapFS{
		"tex.png":  {Data: buf.Bytes()},
		"tex.vert": {Data: []byte("not an image")},
	}))
	got, err := f.Image(context.Background(), "tex.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 2), got.Bounds().Size())
	r, g, b, _ := got.At(1, 1).RGBA()
	assert.Equal(t, []uint32{9, 8, 7}, []uint32{r >> 8, g >> 8, b >> 8})

	_, err = f.Image(context.Background(), "tex.vert")
	assert.Error(t, err)
}

func TestNewFetcherBadBase(t *testing.T) {
	_, err := NewFetcher(configFor([]Option{WithBaseURL("http://[::1")}))
	assert.Error(t, err)
}
