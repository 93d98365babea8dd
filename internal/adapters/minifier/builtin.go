package minifier

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/kamal-hamza/inlinegen/internal/core/ports"
)

// mediaTypes maps file extensions to the media types registered below
var mediaTypes = map[string]string{
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".mjs":  "application/javascript",
	".json": "application/json",
	".svg":  "image/svg+xml",
}

// BuiltinMinifier implements the Minifier port in-process with tdewolff/minify
type BuiltinMinifier struct {
	m *minify.M
}

// NewBuiltinMinifier creates an in-process minifier for html, css, js, json and svg
func NewBuiltinMinifier() *BuiltinMinifier {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	m.AddFuncRegexp(regexp.MustCompile("[/+]json$"), json.Minify)

	return &BuiltinMinifier{m: m}
}

// Ensure it implements the interface
var _ ports.Minifier = (*BuiltinMinifier)(nil)

type minifyResult struct {
	out []byte
	err error
}

// Minify reads path and minifies it according to its extension
func (b *BuiltinMinifier) Minify(ctx context.Context, path string) ([]byte, error) {
	mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("no builtin minifier for %s", filepath.Base(path))
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	done := make(chan minifyResult, 1)
	go func() {
		out, err := b.m.Bytes(mediaType, src)
		done <- minifyResult{out: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("failed to minify %s: %w", filepath.Base(path), res.err)
		}
		return res.out, nil
	}
}
