package domain

import (
	"errors"
	"testing"
)

func TestNewSymbolSet(t *testing.T) {
	tests := []struct {
		base      string
		name      string
		sizeName  string
		arrayName string
	}{
		{"app.js", "APP_JS", "APP_JS_SIZE", "APP_JS_PROGMEM_ARRAY"},
		{"logo.png", "LOGO_PNG", "LOGO_PNG_SIZE", "LOGO_PNG_PROGMEM_ARRAY"},
		{"jquery.min.js", "JQUERY_MIN_JS", "JQUERY_MIN_JS_SIZE", "JQUERY_MIN_JS_PROGMEM_ARRAY"},
		{"Makefile", "MAKEFILE", "MAKEFILE_SIZE", "MAKEFILE_PROGMEM_ARRAY"},
	}

	for _, tt := range tests {
		got := NewSymbolSet(tt.base)
		if got.Name != tt.name || got.SizeName != tt.sizeName || got.ArrayName != tt.arrayName {
			t.Errorf("NewSymbolSet(%q) = %+v", tt.base, got)
		}
	}
}

func TestNewAssetFile(t *testing.T) {
	f := NewAssetFile(`css\Style.CSS`, "/abs/css/Style.CSS")

	if f.RelPath != "css/Style.CSS" {
		t.Errorf("expected normalized rel path, got %q", f.RelPath)
	}
	if f.Ext != ".css" {
		t.Errorf("expected ext .css, got %q", f.Ext)
	}
	if f.BaseName() != "Style.CSS" {
		t.Errorf("expected base name Style.CSS, got %q", f.BaseName())
	}
}

func TestResolveSymbols_Collision(t *testing.T) {
	assets := []ProcessedAsset{
		{RelPath: "a/index.html"},
		{RelPath: "b/index.html"},
	}

	_, err := ResolveSymbols(assets)
	if !errors.Is(err, ErrSymbolCollision) {
		t.Fatalf("expected ErrSymbolCollision, got %v", err)
	}
}

func TestResolveSymbols_CaseCollision(t *testing.T) {
	assets := []ProcessedAsset{
		{RelPath: "App.js"},
		{RelPath: "app.JS"},
	}

	if _, err := ResolveSymbols(assets); !errors.Is(err, ErrSymbolCollision) {
		t.Fatalf("expected ErrSymbolCollision, got %v", err)
	}
}

func TestResolveSymbols_Invalid(t *testing.T) {
	invalid := []string{"404.html", "my-page.html", "space name.css"}

	for _, name := range invalid {
		_, err := ResolveSymbols([]ProcessedAsset{{RelPath: name}})
		if !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("%s: expected ErrInvalidSymbol, got %v", name, err)
		}
	}
}

func TestResolveSymbols_Order(t *testing.T) {
	assets := []ProcessedAsset{
		{RelPath: "app.js"},
		{RelPath: "img/logo.png"},
	}

	symbols, err := ResolveSymbols(assets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if symbols[0].Name != "APP_JS" || symbols[1].Name != "LOGO_PNG" {
		t.Errorf("unexpected symbols: %+v", symbols)
	}
}

func TestComputeTotals(t *testing.T) {
	assets := []ProcessedAsset{
		{RelPath: "app.js", OriginalSize: 1000, FinalSize: 400},
		{RelPath: "logo.png", OriginalSize: 500, FinalSize: 500},
	}

	totals := ComputeTotals(assets)

	if totals.Files != 2 {
		t.Errorf("expected 2 files, got %d", totals.Files)
	}
	if totals.OriginalSize != 1500 || totals.FinalSize != 900 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if !totals.Reduced() {
		t.Error("expected totals to be reduced")
	}
	if got := totals.ReductionPercent(); got != 40 {
		t.Errorf("expected 40%% reduction, got %v", got)
	}
}

func TestReductionPercent_Empty(t *testing.T) {
	if got := ReductionPercent(0, 0); got != 0 {
		t.Errorf("expected 0 for empty file, got %v", got)
	}
}

func TestMinifierExitError(t *testing.T) {
	err := &MinifierExitError{Code: 2, Stderr: "boom"}
	if err.Error() != "minifier exited with status 2: boom" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	bare := &MinifierExitError{Code: 1}
	if bare.Error() != "minifier exited with status 1" {
		t.Errorf("unexpected message: %s", bare.Error())
	}
}
