package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/inlinegen/pkg/config"
	"github.com/kamal-hamza/inlinegen/pkg/ui"
	"github.com/kamal-hamza/inlinegen/pkg/workspace"
)

var (
	// Global flags
	projectDir string
	buildDir   string
	configPath string
	logFormat  string

	// Resolved per invocation in initializeApp
	appWorkspace *workspace.Workspace
	appConfig    *config.Config
)

// rootCmd generates the header when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "inlinegen",
	Short: "Embed web assets into a firmware C header",
	Long: ui.StyleTitle.Render("inlinegen") + " - firmware asset embedder\n\n" +
		"Collects the project's data directory, minifies html/js/css through an\n" +
		"external minifier and writes every file as a PROGMEM byte array into a\n" +
		"generated C header. Running without a subcommand is the same as 'generate'.",
	PersistentPreRunE: initializeApp,
	RunE:              runGenerate,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "Project directory (default $PROJECT_DIR or the working directory)")
	rootCmd.PersistentFlags().StringVar(&buildDir, "build-dir", "", "Build directory (default $BUILD_DIR or <project>/.pio/build)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default <project>/"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Diagnostics format: console or json")

	addGenerateFlags(rootCmd)
}

// initializeApp resolves the workspace and loads the configuration
func initializeApp(cmd *cobra.Command, args []string) error {
	// version needs no project
	if cmd.Name() == "version" {
		return nil
	}

	if logFormat != "console" && logFormat != "json" {
		return fmt.Errorf("unknown log format: %q", logFormat)
	}

	if err := workspace.LoadEnv("."); err != nil {
		return err
	}

	ws, err := workspace.New(projectDir, buildDir)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}

	if configPath != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		ws.ConfigPath = abs
	}

	cfg, err := config.Load(ws.ConfigPath)
	if err != nil {
		return err
	}
	ws.Apply(cfg)

	appWorkspace = ws
	appConfig = cfg
	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
