package minifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
	"github.com/kamal-hamza/inlinegen/internal/core/ports"
)

const (
	// DefaultRuntime is the interpreter used to run the minifier script
	DefaultRuntime = "node"

	// DefaultScript is the minify CLI installed by `npm install minify`
	DefaultScript = "./node_modules/minify/bin/minify.js"

	// waitDelay bounds how long we wait for pipes after the process is killed
	waitDelay = 2 * time.Second
)

// NodeMinifier implements the Minifier port by running an external script:
// <runtime> <script> <file>. Minified bytes are read from stdout.
type NodeMinifier struct {
	runtime string
	script  string
	dir     string
}

// NewNodeMinifier creates a subprocess minifier. dir is the working
// directory the script path is resolved against ("" for the current one).
func NewNodeMinifier(runtime, script, dir string) *NodeMinifier {
	if runtime == "" {
		runtime = DefaultRuntime
	}
	if script == "" {
		script = DefaultScript
	}
	return &NodeMinifier{
		runtime: runtime,
		script:  script,
		dir:     dir,
	}
}

// Ensure it implements the interface
var _ ports.Minifier = (*NodeMinifier)(nil)

// Minify runs the script for path. The process is killed when ctx is done.
func (m *NodeMinifier) Minify(ctx context.Context, path string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, m.runtime, m.script, path)
	cmd.Dir = m.dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &domain.MinifierExitError{
				Code:   exitErr.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("failed to run %s: %w", m.runtime, err)
	}

	return stdout.Bytes(), nil
}

// IsAvailable checks if the runtime is installed and available
func (m *NodeMinifier) IsAvailable() bool {
	_, err := exec.LookPath(m.runtime)
	return err == nil
}

// Script returns the configured script path
func (m *NodeMinifier) Script() string {
	return m.script
}
