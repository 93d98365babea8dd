package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/inlinegen/internal/adapters/minifier"
	"github.com/kamal-hamza/inlinegen/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project setup",
	Long: `Diagnose issues with the asset embedding setup.

Checks for:
  - Data directory existence
  - Configuration file existence and exclude patterns
  - Minifier runtime and script (node backend)
  - Output directory writability`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.FormatTitle(ui.IconChip+" inlinegen doctor"))
	fmt.Fprintln(out)

	failed := 0
	check := func(name string, fn func() error) {
		if !checkStep(out, name, fn) {
			failed++
		}
	}

	// 1. Project layout
	check("Data Directory", func() error {
		if !appWorkspace.DataExists() {
			return fmt.Errorf("missing at %s (generation will be skipped)", appWorkspace.DataPath)
		}
		return nil
	})

	check("Configuration File", func() error {
		if _, err := os.Stat(appWorkspace.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (using defaults)", appWorkspace.ConfigPath)
		}
		return nil
	})

	check("Exclude Patterns", func() error {
		for _, pattern := range appConfig.Exclude {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("invalid pattern %q", pattern)
			}
		}
		return nil
	})

	// 2. Minifier
	switch appConfig.Minifier.Backend {
	case minifier.BackendNode, "":
		node := minifier.NewNodeMinifier(appConfig.Minifier.Runtime, appConfig.Minifier.Script, appWorkspace.ProjectPath)

		check(appConfig.Minifier.Runtime+" (Minifier Runtime)", func() error {
			if !node.IsAvailable() {
				return fmt.Errorf("not found in PATH (files will be embedded unminified)")
			}
			return nil
		})

		check("Minifier Script", func() error {
			script := node.Script()
			if !filepath.IsAbs(script) {
				script = filepath.Join(appWorkspace.ProjectPath, script)
			}
			if _, err := os.Stat(script); err != nil {
				return fmt.Errorf("missing at %s (run 'npm install minify')", script)
			}
			return nil
		})
	default:
		check("Minifier Backend", func() error {
			_, err := minifier.New(appConfig.Minifier, appWorkspace.ProjectPath)
			return err
		})
	}

	// 3. Output
	check("Output Directory", func() error {
		if err := os.MkdirAll(appWorkspace.GenPath, 0755); err != nil {
			return fmt.Errorf("not writable: %w", err)
		}
		probe, err := os.CreateTemp(appWorkspace.GenPath, ".probe-*")
		if err != nil {
			return fmt.Errorf("not writable: %w", err)
		}
		probe.Close()
		return os.Remove(probe.Name())
	})

	fmt.Fprintln(out)
	if failed > 0 {
		fmt.Fprintln(out, ui.FormatWarning(fmt.Sprintf("%d check(s) need attention", failed)))
	} else {
		fmt.Fprintln(out, ui.FormatSuccess("All checks passed"))
	}
	return nil
}

// checkStep runs a check function and prints the result nicely
func checkStep(w io.Writer, name string, check func() error) bool {
	err := check()
	if err == nil {
		fmt.Fprintf(w, "%s %s\n", ui.StyleSuccess.Render(ui.IconSuccess), name)
		return true
	}
	fmt.Fprintf(w, "%s %s\n", ui.StyleError.Render(ui.IconError), name)
	fmt.Fprintf(w, "    %s\n", ui.StyleMuted.Render(err.Error()))
	return false
}
