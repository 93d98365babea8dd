package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
	"github.com/kamal-hamza/inlinegen/internal/core/ports"
	"github.com/kamal-hamza/inlinegen/pkg/cheader"
)

// DefaultMinifyTimeout bounds a single minifier invocation
const DefaultMinifyTimeout = 30 * time.Second

// ReaderService produces the bytes to embed for one asset
type ReaderService struct {
	minifier   ports.Minifier
	logger     ports.Logger
	extensions map[string]struct{}
	timeout    time.Duration
}

// NewReaderService creates a reader. A nil minifier disables minification.
func NewReaderService(minifier ports.Minifier, logger ports.Logger, extensions []string, timeout time.Duration) *ReaderService {
	if timeout <= 0 {
		timeout = DefaultMinifyTimeout
	}
	exts := lo.SliceToMap(extensions, func(ext string) (string, struct{}) {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		return ext, struct{}{}
	})
	return &ReaderService{
		minifier:   minifier,
		logger:     logger,
		extensions: exts,
		timeout:    timeout,
	}
}

// Minifiable reports whether the file type is eligible for minification
func (s *ReaderService) Minifiable(file domain.AssetFile) bool {
	if s.minifier == nil {
		return false
	}
	_, ok := s.extensions[file.Ext]
	return ok
}

// Read returns the processed asset. Minifier problems never surface as
// errors; only a failure to read the source file does.
func (s *ReaderService) Read(ctx context.Context, file domain.AssetFile) (domain.ProcessedAsset, error) {
	original, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return domain.ProcessedAsset{}, fmt.Errorf("failed to read %s: %w", file.RelPath, err)
	}

	if !s.Minifiable(file) {
		return domain.NewProcessedAsset(file, original, len(original)), nil
	}

	content := s.minify(ctx, file, original)
	return domain.NewProcessedAsset(file, content, len(original)), nil
}

// minify applies the fallback rules and returns the bytes to embed
func (s *ReaderService) minify(ctx context.Context, file domain.AssetFile, original []byte) []byte {
	mctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	minified, err := s.minifier.Minify(mctx, file.AbsPath)
	if err != nil {
		var exitErr *domain.MinifierExitError
		switch {
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(mctx.Err(), context.DeadlineExceeded):
			s.logger.Warn("Minification timeout for %s after %s, using original file", file.AbsPath, s.timeout)
		case errors.As(err, &exitErr):
			s.logger.Warn("Minification failed for %s (exit status %d), using original file", file.AbsPath, exitErr.Code)
		default:
			s.logger.Warn("Error processing %s: %v, using original file", file.AbsPath, err)
		}
		return original
	}

	if len(minified) >= len(original) {
		s.logger.Info("Minification didn't reduce size of %s, using original", file.BaseName())
		return original
	}

	s.logger.Info("Minified '%s' from %s to %s bytes (-%.1f%%)",
		file.BaseName(), cheader.FormatCount(len(original)), cheader.FormatCount(len(minified)),
		domain.ReductionPercent(len(original), len(minified)))
	return minified
}
