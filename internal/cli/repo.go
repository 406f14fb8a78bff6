package cli

import (
	"net"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mavenviz/internal/repo"
)

const defaultServeAddr = "127.0.0.1:8080"

// repoCommand creates the repo command for working with local repositories.
func (c *CLI) repoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Work with local Maven-layout repositories",
	}
	cmd.AddCommand(c.repoServeCommand())
	return cmd
}

func (c *CLI) repoServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <dir>",
		Short: "Serve the POM files of a local directory over HTTP",
		Long: `Serve the POM files below <dir> using the standard Maven layout, so a
test repository can be resolved through the HTTP transport.

Stop the server with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			srv, err := repo.NewServer(args[0], logger)
			if err != nil {
				return err
			}
			l, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}

			url := "http://" + l.Addr().String()
			printSuccess("Serving %s", StyleValue.Render(args[0]))
			printDetail("%s", StyleLink.Render(url))
			printNextStep("Resolve against it", appName+" deps <group:artifact> <version> -r "+url)
			logger.Info("Listening", "addr", l.Addr().String())

			if err := srv.Serve(ctx, l); err != nil {
				return err
			}
			printInfo("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	return cmd
}
