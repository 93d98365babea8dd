package domain

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
)

var (
	// ErrSymbolCollision is returned when two assets map to the same C symbol
	ErrSymbolCollision = errors.New("symbol collision")

	// ErrInvalidSymbol is returned when a file name cannot become a C identifier
	ErrInvalidSymbol = errors.New("invalid symbol name")
)

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// AssetFile is a single file discovered under the asset directory
type AssetFile struct {
	RelPath string // slash separated, relative to the asset root
	AbsPath string
	Ext     string // lower-cased, including the dot
}

// NewAssetFile builds an AssetFile from a relative and an absolute path
func NewAssetFile(relPath, absPath string) AssetFile {
	rel := strings.ReplaceAll(relPath, "\\", "/")
	return AssetFile{
		RelPath: rel,
		AbsPath: absPath,
		Ext:     strings.ToLower(path.Ext(rel)),
	}
}

// BaseName returns the file name without its directory
func (a AssetFile) BaseName() string {
	return path.Base(a.RelPath)
}

// ProcessedAsset is an asset after the minify-or-fallback step
type ProcessedAsset struct {
	RelPath      string
	Content      []byte
	OriginalSize int
	FinalSize    int
}

// NewProcessedAsset creates a ProcessedAsset for the given payload
func NewProcessedAsset(file AssetFile, content []byte, originalSize int) ProcessedAsset {
	return ProcessedAsset{
		RelPath:      file.RelPath,
		Content:      content,
		OriginalSize: originalSize,
		FinalSize:    len(content),
	}
}

// Reduced reports whether the embedded payload differs in size from the source
func (p ProcessedAsset) Reduced() bool {
	return p.FinalSize != p.OriginalSize
}

// ReductionPercent returns (original-final)/original*100, or 0 for empty files
func (p ProcessedAsset) ReductionPercent() float64 {
	return ReductionPercent(p.OriginalSize, p.FinalSize)
}

// ReductionPercent computes the size reduction in percent
func ReductionPercent(original, final int) float64 {
	if original <= 0 {
		return 0
	}
	return float64(original-final) / float64(original) * 100
}

// SymbolSet holds the C names emitted for one asset
type SymbolSet struct {
	Name      string // byte pointer accessor macro
	SizeName  string // size macro
	ArrayName string // PROGMEM storage array
}

// NewSymbolSet derives the symbol names from a file's base name.
// The name is upper-cased and every '.' becomes '_'.
func NewSymbolSet(baseName string) SymbolSet {
	name := strings.ReplaceAll(strings.ToUpper(baseName), ".", "_")
	return SymbolSet{
		Name:      name,
		SizeName:  name + "_SIZE",
		ArrayName: name + "_PROGMEM_ARRAY",
	}
}

// Validate checks that the accessor name is a usable C identifier
func (s SymbolSet) Validate() error {
	if !identifierRegex.MatchString(s.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, s.Name)
	}
	return nil
}

// ResolveSymbols derives the symbol set of every asset in order and fails on
// invalid names or on two assets sharing a name.
func ResolveSymbols(assets []ProcessedAsset) ([]SymbolSet, error) {
	symbols := make([]SymbolSet, len(assets))
	owners := make(map[string]string, len(assets))

	for i, asset := range assets {
		sym := NewSymbolSet(path.Base(asset.RelPath))
		if err := sym.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", asset.RelPath, err)
		}
		if prev, exists := owners[sym.Name]; exists {
			return nil, fmt.Errorf("%w: %s and %s both map to %s", ErrSymbolCollision, prev, asset.RelPath, sym.Name)
		}
		owners[sym.Name] = asset.RelPath
		symbols[i] = sym
	}

	return symbols, nil
}

// MinifierExitError reports a minifier process that exited with a non-zero status
type MinifierExitError struct {
	Code   int
	Stderr string
}

func (e *MinifierExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("minifier exited with status %d", e.Code)
	}
	return fmt.Sprintf("minifier exited with status %d: %s", e.Code, e.Stderr)
}
