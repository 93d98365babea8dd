package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
)

func sampleAssets() []domain.ProcessedAsset {
	app := domain.NewAssetFile("app.js", "/data/app.js")
	logo := domain.NewAssetFile("img/logo.png", "/data/img/logo.png")
	return []domain.ProcessedAsset{
		domain.NewProcessedAsset(app, bytes.Repeat([]byte("a"), 400), 1000),
		domain.NewProcessedAsset(logo, bytes.Repeat([]byte{0xff}, 500), 500),
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(sampleAssets(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	page := buf.String()
	for _, want := range []string{"Embedded asset sizes", "Original", "Embedded", "app.js", "img/logo.png"} {
		if !strings.Contains(page, want) {
			t.Errorf("expected %q in report", want)
		}
	}
}

func TestRender_Subtitle(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(sampleAssets(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(buf.String(), "2 files, 900 bytes embedded (-40.0%)") {
		t.Error("expected totals in subtitle")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "size.html")

	if err := WriteFile(path, sampleAssets()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty report")
	}
}

func TestRender_NoAssets(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(nil, &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "0 files") {
		t.Error("expected empty report to mention 0 files")
	}
}
