package cheader

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const bytesPerMB = 1024 * 1024

var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousands separators ("1,500")
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatSize renders a byte count as "N,NNN bytes", adding "(X.XX MB)"
// once the size reaches 0.01 MB.
func FormatSize(n int) string {
	mb := float64(n) / bytesPerMB
	if mb >= 0.01 {
		return fmt.Sprintf("%s bytes (%.2f MB)", FormatCount(n), mb)
	}
	return FormatCount(n) + " bytes"
}

// FormatReduction renders a reduction suffix, or "" when sizes are equal
func FormatReduction(original, final int, percent float64) string {
	if original == final {
		return ""
	}
	return fmt.Sprintf(" (reduced by %.1f%%)", percent)
}
