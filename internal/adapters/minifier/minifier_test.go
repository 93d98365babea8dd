package minifier

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
	"github.com/kamal-hamza/inlinegen/pkg/config"
)

// writeScript creates a shell script that stands in for the node minifier
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "minify.sh")
	if err := os.WriteFile(path, []byte(body), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func writeAsset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}
	return path
}

func TestNodeMinifier_Success(t *testing.T) {
	script := writeScript(t, `tr -d ' ' < "$1"`)
	asset := writeAsset(t, "app.js", "var a = 1 ;")

	m := NewNodeMinifier("sh", script, "")
	out, err := m.Minify(context.Background(), asset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "vara=1;" {
		t.Errorf("expected stripped output, got %q", out)
	}
}

func TestNodeMinifier_ExitStatus(t *testing.T) {
	script := writeScript(t, "echo 'parse error' >&2\nexit 3\n")
	asset := writeAsset(t, "app.js", "x")

	m := NewNodeMinifier("sh", script, "")
	_, err := m.Minify(context.Background(), asset)

	var exitErr *domain.MinifierExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected MinifierExitError, got %v", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("expected exit code 3, got %d", exitErr.Code)
	}
	if exitErr.Stderr != "parse error" {
		t.Errorf("expected stderr captured, got %q", exitErr.Stderr)
	}
}

func TestNodeMinifier_Timeout(t *testing.T) {
	script := writeScript(t, "exec sleep 10\n")
	asset := writeAsset(t, "app.js", "x")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	m := NewNodeMinifier("sh", script, "")
	start := time.Now()
	_, err := m.Minify(ctx, asset)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("minifier was not stopped in time: %s", elapsed)
	}
}

func TestNodeMinifier_MissingRuntime(t *testing.T) {
	m := NewNodeMinifier("definitely-not-a-runtime-xyz", "script.js", "")

	_, err := m.Minify(context.Background(), "/tmp/app.js")
	if err == nil {
		t.Fatal("expected error for missing runtime")
	}

	var exitErr *domain.MinifierExitError
	if errors.As(err, &exitErr) {
		t.Error("missing runtime should not be reported as an exit status")
	}
	if m.IsAvailable() {
		t.Error("expected runtime to be unavailable")
	}
}

func TestNodeMinifier_Defaults(t *testing.T) {
	m := NewNodeMinifier("", "", "")
	if m.runtime != DefaultRuntime {
		t.Errorf("expected runtime %q, got %q", DefaultRuntime, m.runtime)
	}
	if m.Script() != DefaultScript {
		t.Errorf("expected script %q, got %q", DefaultScript, m.Script())
	}
}

func TestBuiltinMinifier_CSS(t *testing.T) {
	asset := writeAsset(t, "style.css", `
		body {
			color: #fff;
			margin: 0  ;
		}
	`)

	out, err := NewBuiltinMinifier().Minify(context.Background(), asset)
	if err != nil {
		t.Fatalf("CSS minification failed: %v", err)
	}
	if string(out) != "body{color:#fff;margin:0}" {
		t.Errorf("CSS minification mismatch: %q", out)
	}
}

func TestBuiltinMinifier_HTML(t *testing.T) {
	asset := writeAsset(t, "index.HTML", `<html>
	<head>
		<title>Test</title>
	</head>
	<body>
		<p> Hello   World! </p>
	</body>
</html>`)

	out, err := NewBuiltinMinifier().Minify(context.Background(), asset)
	if err != nil {
		t.Fatalf("HTML minification failed: %v", err)
	}
	got := strings.ReplaceAll(string(out), "\n", "")
	if got != "<title>Test</title><p>Hello World!" {
		t.Errorf("HTML minification mismatch: %q", got)
	}
}

func TestBuiltinMinifier_UnsupportedExtension(t *testing.T) {
	asset := writeAsset(t, "logo.png", "\x89PNG")

	if _, err := NewBuiltinMinifier().Minify(context.Background(), asset); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		backend string
		wantNil bool
		wantErr bool
	}{
		{BackendNode, false, false},
		{"", false, false},
		{BackendBuiltin, false, false},
		{BackendNone, true, false},
		{"uglify", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			m, err := New(config.MinifierConfig{Backend: tt.backend}, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if (m == nil) != tt.wantNil {
				t.Errorf("expected nil=%v, got %T", tt.wantNil, m)
			}
		})
	}
}
