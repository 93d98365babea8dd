package cheader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
)

const (
	// DefaultGuard is the include guard token of the generated header
	DefaultGuard = "OWIE_GENERATED_DATA_H"

	// DefaultGenerator is the tool name written into the banner
	DefaultGenerator = "inlinegen"

	// valuesPerLine is the column limit; a value pushing the column past it
	// starts a new line
	valuesPerLine = 20
)

// Options controls the fixed parts of the generated text
type Options struct {
	Guard     string
	Generator string
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Guard:     DefaultGuard,
		Generator: DefaultGenerator,
	}
}

// Render produces the header text for assets, in the given order
func Render(assets []domain.ProcessedAsset, opts Options) ([]byte, error) {
	if opts.Guard == "" {
		opts.Guard = DefaultGuard
	}
	if opts.Generator == "" {
		opts.Generator = DefaultGenerator
	}

	symbols, err := domain.ResolveSymbols(assets)
	if err != nil {
		return nil, err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "// WARNING: Autogenerated by %s, don't edit manually.\n", opts.Generator)
	fmt.Fprintf(&b, "#ifndef %s\n", opts.Guard)
	fmt.Fprintf(&b, "#define %s\n\n", opts.Guard)

	for i, asset := range assets {
		writeAsset(&b, asset, symbols[i])
	}

	totals := domain.ComputeTotals(assets)
	fmt.Fprintf(&b, "// Total original size: %s\n", FormatSize(totals.OriginalSize))
	fmt.Fprintf(&b, "// Total minified size: %s%s\n\n",
		FormatSize(totals.FinalSize),
		FormatReduction(totals.OriginalSize, totals.FinalSize, totals.ReductionPercent()))

	fmt.Fprintf(&b, "#endif // %s\n", opts.Guard)

	return []byte(b.String()), nil
}

// writeAsset emits the comment block, array and macros of one asset
func writeAsset(b *strings.Builder, asset domain.ProcessedAsset, sym domain.SymbolSet) {
	fmt.Fprintf(b, "// From: %s\n", asset.RelPath)
	fmt.Fprintf(b, "// Original: %s\n", FormatSize(asset.OriginalSize))
	fmt.Fprintf(b, "// Minified: %s%s\n",
		FormatSize(asset.FinalSize),
		FormatReduction(asset.OriginalSize, asset.FinalSize, asset.ReductionPercent()))

	fmt.Fprintf(b, "static const unsigned char %s[] PROGMEM = {\n  ", sym.ArrayName)
	writeByteLiteral(b, asset.Content)
	b.WriteString("};\n")

	fmt.Fprintf(b, "#define %s FPSTR(%s)\n", sym.Name, sym.ArrayName)
	fmt.Fprintf(b, "#define %s sizeof(%s)\n\n", sym.SizeName, sym.ArrayName)
}

// writeByteLiteral writes content as comma separated decimals. The column
// counter resets after each break, so the first line holds 20 values and
// every later line 21.
func writeByteLiteral(b *strings.Builder, content []byte) {
	b.Grow(len(content) * 4)

	var num [3]byte
	column := 0
	for i, v := range content {
		if i > 0 {
			b.WriteByte(',')
		}
		column++
		if column > valuesPerLine {
			column = 0
			b.WriteString("\n  ")
		}
		b.Write(strconv.AppendUint(num[:0], uint64(v), 10))
	}
}
