package ports

import (
	"context"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
)

// AssetSource defines the port for discovering asset files
type AssetSource interface {
	// Collect returns every regular file under root, sorted by relative path
	Collect(ctx context.Context, root string) ([]domain.AssetFile, error)
}

// Minifier defines the port for shrinking a single text asset
type Minifier interface {
	// Minify returns the minified bytes of the file at path.
	// Implementations must stop when ctx is done and return a
	// *domain.MinifierExitError when the underlying tool reports failure.
	Minify(ctx context.Context, path string) ([]byte, error)
}

// Logger defines the port for per-file diagnostics.
// Implementations must be safe for concurrent use.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}
