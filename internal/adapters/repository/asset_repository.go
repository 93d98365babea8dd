package repository

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
	"github.com/kamal-hamza/inlinegen/internal/core/ports"
)

// AssetRepository discovers asset files on the local filesystem
type AssetRepository struct {
	exclude []string
}

// NewAssetRepository creates a filesystem collector. Files whose relative
// path matches one of the exclude globs (doublestar syntax) are skipped.
func NewAssetRepository(exclude []string) (*AssetRepository, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %q", pattern)
		}
	}
	return &AssetRepository{exclude: exclude}, nil
}

// Ensure it implements the interface
var _ ports.AssetSource = (*AssetRepository)(nil)

// Collect walks root recursively and returns every regular file sorted by
// relative path, so the result does not depend on directory order.
func (r *AssetRepository) Collect(ctx context.Context, root string) ([]domain.AssetFile, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	var files []domain.AssetFile
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}

		if !isRegularFile(path, d) {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if r.excluded(rel) {
			return nil
		}

		files = append(files, domain.NewAssetFile(rel, path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk asset directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})

	return files, nil
}

// excluded checks rel against the exclude globs
func (r *AssetRepository) excluded(rel string) bool {
	for _, pattern := range r.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// isRegularFile accepts regular files and symlinks that resolve to one
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
