// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru"

	// Image formats accepted by Fetcher.Image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LooksLikeURL reports whether s should be fetched rather than used as
// shader source text. Sources contain whitespace; references do not.
func LooksLikeURL(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}

// Fetcher loads shader sources and images by reference. HTTP(S)
// references go through an http.Client, all others are read from a file
// system. A Fetcher is safe for concurrent use.
type Fetcher struct {
	base   *url.URL
	fsys   fs.FS
	client *http.Client
	// cache maps resolved references to source text. Nil if disabled.
	cache *lru.Cache
}

// NewFetcher returns a Fetcher for the reference settings of cfg.
func NewFetcher(cfg Config) (*Fetcher, error) {
	f := &Fetcher{
		fsys:   cfg.FS,
		client: cfg.Client,
	}
	if f.client == nil {
		f.client = http.DefaultClient
	}
	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("igloo: base url: %w", err)
		}
		f.base = base
	}
	if cfg.SourceCacheSize > 0 {
		c, err := lru.New(cfg.SourceCacheSize)
		if err != nil {
			return nil, fmt.Errorf("igloo: source cache: %w", err)
		}
		f.cache = c
	}
	return f, nil
}

// Fetch returns the text behind ref, blocking until it is available.
func (f *Fetcher) Fetch(ctx context.Context, ref string) (string, error) {
	u, err := f.resolve(ref)
	if err != nil {
		return "", err
	}
	key := u.String()
	if f.cache != nil {
		if v, ok := f.cache.Get(key); ok {
			return v.(string), nil
		}
	}
	data, err := f.read(ctx, u)
	if err != nil {
		return "", err
	}
	src := string(data)
	if f.cache != nil {
		f.cache.Add(key, src)
	}
	Logger().Debug("igloo: fetched source", "ref", key, "bytes", len(data))
	return src, nil
}

// FetchAsync fetches ref on a new goroutine and calls done with the
// result from that goroutine. Do not issue graphics calls from done.
func (f *Fetcher) FetchAsync(ref string, done func(src string, err error)) {
	go func() {
		done(f.Fetch(context.Background(), ref))
	}()
}

// Image fetches and decodes the image behind ref. PNG, JPEG, GIF, BMP,
// TIFF and WebP are supported.
func (f *Fetcher) Image(ctx context.Context, ref string) (image.Image, error) {
	u, err := f.resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := f.read(ctx, u)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("igloo: decode %s: %w", u, err)
	}
	Logger().Debug("igloo: fetched image", "ref", u.String(), "format", format, "size", img.Bounds().Size())
	return img, nil
}

func (f *Fetcher) resolve(ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("igloo: fetch %q: %w", ref, err)
	}
	if f.base != nil {
		u = f.base.ResolveReference(u)
	}
	switch u.Scheme {
	case "", "file", "http", "https":
		return u, nil
	default:
		return nil, fmt.Errorf("igloo: fetch %q: unsupported scheme %q", ref, u.Scheme)
	}
}

func (f *Fetcher) read(ctx context.Context, u *url.URL) ([]byte, error) {
	if u.Scheme == "http" || u.Scheme == "https" {
		return f.get(ctx, u)
	}
	var (
		data []byte
		err  error
	)
	if f.fsys != nil {
		name := strings.TrimPrefix(path.Clean(u.Path), "/")
		data, err = fs.ReadFile(f.fsys, name)
	} else {
		data, err = os.ReadFile(filepath.FromSlash(u.Path))
	}
	if err != nil {
		return nil, fmt.Errorf("igloo: fetch %s: %w", u, err)
	}
	return data, nil
}

func (f *Fetcher) get(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("igloo: fetch %s: %w", u, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("igloo: fetch %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("igloo: fetch %s: %s", u, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("igloo: fetch %s: %w", u, err)
	}
	return data, nil
}
