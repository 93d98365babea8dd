package minifier

import (
	"fmt"

	"github.com/kamal-hamza/inlinegen/internal/core/ports"
	"github.com/kamal-hamza/inlinegen/pkg/config"
)

// Backend names accepted in the configuration
const (
	BackendNode    = "node"
	BackendBuiltin = "builtin"
	BackendNone    = "none"
)

// New returns the minifier selected by cfg. The "none" backend returns a
// nil Minifier, which disables minification.
func New(cfg config.MinifierConfig, dir string) (ports.Minifier, error) {
	switch cfg.Backend {
	case BackendNode, "":
		return NewNodeMinifier(cfg.Runtime, cfg.Script, dir), nil
	case BackendBuiltin:
		return NewBuiltinMinifier(), nil
	case BackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown minifier backend: %q", cfg.Backend)
	}
}
