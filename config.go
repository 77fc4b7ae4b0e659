// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/BurntSushi/toml"
)

// ContextAttributes are passed to a Canvas when requesting a context.
// They mirror WebGLContextAttributes.
type ContextAttributes struct {
	Alpha                 bool `toml:"alpha"`
	Depth                 bool `toml:"depth"`
	Stencil               bool `toml:"stencil"`
	Antialias             bool `toml:"antialias"`
	PremultipliedAlpha    bool `toml:"premultiplied_alpha"`
	PreserveDrawingBuffer bool `toml:"preserve_drawing_buffer"`
}

// DefaultAttributes matches the defaults of WebGL.
var DefaultAttributes = ContextAttributes{
	Alpha:              true,
	Depth:              true,
	Antialias:          true,
	PremultipliedAlpha: true,
}

// Config holds the settings of an Igloo.
type Config struct {
	Attributes ContextAttributes `toml:"attributes"`
	// NoError makes NewCanvas return a nil Igloo instead of a
	// ContextError when no context is available.
	NoError bool `toml:"no_error"`
	// BaseURL resolves relative shader and image references. When empty,
	// relative references are read from FS.
	BaseURL string `toml:"base_url"`
	// SourceCacheSize is the number of fetched sources kept in memory.
	// Zero disables caching.
	SourceCacheSize int `toml:"source_cache_size"`

	// FS serves non-HTTP references. Default is the OS filesystem rooted
	// at the working directory.
	FS fs.FS `toml:"-"`
	// Client performs HTTP fetches. Default http.DefaultClient.
	Client *http.Client `toml:"-"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Attributes:      DefaultAttributes,
		SourceCacheSize: 32,
	}
}

// LoadConfig reads a TOML configuration file. Keys absent from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("igloo: load config: %w", err)
	}
	return cfg, nil
}

// Option configures an Igloo.
type Option func(cfg *Config)

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
	}
}

// WithAttributes sets the context attributes requested from a Canvas.
func WithAttributes(attrs ContextAttributes) Option {
	return func(cfg *Config) {
		cfg.Attributes = attrs
	}
}

// WithNoError makes NewCanvas return a nil Igloo rather than an error when
// no context can be created.
func WithNoError() Option {
	return func(cfg *Config) {
		cfg.NoError = true
	}
}

// WithBaseURL sets the base for relative references.
func WithBaseURL(u string) Option {
	return func(cfg *Config) {
		cfg.BaseURL = u
	}
}

// WithFS sets the file system serving non-HTTP references.
func WithFS(fsys fs.FS) Option {
	return func(cfg *Config) {
		cfg.FS = fsys
	}
}

// WithHTTPClient sets the client for HTTP references.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *Config) {
		cfg.Client = c
	}
}

// WithSourceCacheSize sets the number of cached fetched sources.
func WithSourceCacheSize(n int) Option {
	return func(cfg *Config) {
		cfg.SourceCacheSize = n
	}
}
