// Package cli implements the mavenviz command-line interface.
//
// # Commands
//
//   - deps: resolve a package version and list its direct dependencies
//   - config: show and validate the effective configuration
//   - repo serve: expose a local Maven-layout directory over HTTP
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Every command that needs a package reads its settings through
// [config.Load] (defaults, TOML file, MAVENVIZ_* environment) and then
// applies the flags the user set explicitly.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Each run gets
// a short run id, and the logger travels through context.Context. Pipeline
// and HTTP events from the resolution core reach the log through
// observability hooks installed before the command runs.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mavenviz/pkg/buildinfo"
	"github.com/matzehuels/mavenviz/pkg/config"
	"github.com/matzehuels/mavenviz/pkg/observability"
)

// appName is the application name used for display.
const appName = "mavenviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // listing output when no --output file is given

	configPath string
}

// New creates a new CLI instance that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "mavenviz lists the direct dependencies of Maven packages",
		Long: `mavenviz fetches the POM of a Maven package version from a remote
repository (or a local directory in the same layout) and lists the
dependencies it declares.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), newRunLogger(c.Logger)))
			observability.SetPipelineHooks(logHooks{})
			observability.SetHTTPHooks(logHooks{})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+config.DefaultFile+" when present)")

	root.AddCommand(c.depsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.repoCommand())
	root.AddCommand(c.completionCommand())

	return root
}
