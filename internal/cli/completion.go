package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts for bash, zsh, fish
// and PowerShell.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mavenviz.

  bash:        source <(mavenviz completion bash)
  zsh:         mavenviz completion zsh > "${fpath[1]}/_mavenviz"
  fish:        mavenviz completion fish | source
  powershell:  mavenviz completion powershell | Out-String | Invoke-Expression

Start a new shell after installing a script permanently.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
