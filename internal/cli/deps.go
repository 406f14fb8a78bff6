package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mavenviz/pkg/config"
	pkgio "github.com/matzehuels/mavenviz/pkg/io"
	"github.com/matzehuels/mavenviz/pkg/maven"
)

// depsCommand creates the deps command.
func (c *CLI) depsCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "deps [package] [version]",
		Short: "List the direct dependencies of a Maven package",
		Long: `Fetch the POM of a package version and list the dependencies it declares.

Package and version may be given as arguments, flags, MAVENVIZ_* environment
variables or in the config file.

Examples:
  mavenviz deps org.springframework:spring-core 5.3.0
  mavenviz deps junit:junit 4.13.2 -r https://repo1.maven.org/maven2 -f json
  mavenviz deps -p com.example:app --version 1.0 -r ./test-repo --test-mode`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, args, &flags)
			if err != nil {
				return err
			}
			return c.runDeps(cmd.Context(), cfg)
		},
	}

	flags.register(cmd)
	return cmd
}

// runDeps validates cfg, resolves the package and writes the listing.
func (c *CLI) runDeps(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	if err := cfg.Validate(); err != nil {
		return err
	}
	kv := make([]any, 0, 2*len(cfg.Fields()))
	for _, f := range cfg.Fields() {
		kv = append(kv, f.Key, f.Value)
	}
	logger.Debug("Configuration", kv...)

	repo := maven.NewRepository(cfg.Repository, cfg.TestMode)
	ref, err := maven.NewManifestRef(cfg.Package, cfg.Version, repo)
	if err != nil {
		return err
	}
	logger.Infof("Resolving %s", ref.Label())
	logger.Debug("Manifest", "url", ref.URL())

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", ref.Label()))
	spinner.Start()
	res, err := maven.NewResolver(maven.NewFetcher(repo)).Resolve(ctx, ref)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d dependencies", len(res.Dependencies)))

	if cfg.Output == "" {
		return pkgio.Write(res, c.Out, cfg.Format)
	}
	if err := pkgio.Export(res, cfg.Output, cfg.Format); err != nil {
		return err
	}
	printSuccess("Wrote %d dependencies of %s", len(res.Dependencies), StyleHighlight.Render(res.Label()))
	printFile(cfg.Output)
	return nil
}
