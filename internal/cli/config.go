package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mavenviz/pkg/config"
)

// configFlags holds the flags shared by every command that builds a
// [config.Config]. Only flags the user set explicitly override the values
// loaded from file and environment.
type configFlags struct {
	pkg        string
	repository string
	version    string
	testMode   bool
	maxDepth   int
	filter     string
	output     string
	format     string
}

func (f *configFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.pkg, "package", "p", "", `package to analyse ("groupId:artifactId")`)
	flags.StringVarP(&f.repository, "repository", "r", "", "repository URL or local directory")
	flags.StringVar(&f.version, "version", "", "package version")
	flags.BoolVar(&f.testMode, "test-mode", false, "read manifests from a local test repository")
	flags.IntVar(&f.maxDepth, "max-depth", config.DefaultMaxDepth, "maximum dependency depth")
	flags.StringVar(&f.filter, "filter", "", "package name substring filter")
	flags.StringVarP(&f.output, "output", "o", "", "output file (stdout if empty)")
	flags.StringVarP(&f.format, "format", "f", config.FormatText, "output format: text or json")
}

// apply overlays explicitly set flags, then positional [package [version]].
func (f *configFlags) apply(cmd *cobra.Command, args []string, cfg *config.Config) {
	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("package", &cfg.Package, f.pkg)
	set("repository", &cfg.Repository, f.repository)
	set("version", &cfg.Version, f.version)
	set("filter", &cfg.Filter, f.filter)
	set("output", &cfg.Output, f.output)
	set("format", &cfg.Format, f.format)
	if flags.Changed("test-mode") {
		cfg.TestMode = f.testMode
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}

	if len(args) > 0 {
		cfg.Package = args[0]
	}
	if len(args) > 1 {
		cfg.Version = args[1]
	}
}

// loadConfig builds the effective configuration for cmd.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string, f *configFlags) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f.apply(cmd, args, &cfg)
	return cfg, nil
}

// configCommand creates the config command, which prints the effective
// configuration and fails when it is invalid.
func (c *CLI) configCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "config [package] [version]",
		Short: "Show the effective configuration",
		Long: `Show the configuration a deps run would use, after merging defaults,
the config file, MAVENVIZ_* environment variables and flags.

The command exits with an error when the configuration is invalid.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, args, &flags)
			if err != nil {
				return err
			}

			printTitle("Configuration")
			for _, f := range cfg.Fields() {
				printKeyValue(f.Key, f.Value)
			}
			printNewline()

			if err := cfg.Validate(); err != nil {
				return err
			}
			printSuccess("Configuration is valid")
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
