package cli

import (
	"github.com/spf13/cobra"

	fpio "github.com/matzehuels/facetplot/pkg/io"
	"github.com/matzehuels/facetplot/pkg/plot"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for facetplot.

Input arguments complete to table files (.tsv, .tab, .txt, .csv, .xlsx),
--kind to the figure kinds and --config to TOML files.

  $ source <(facetplot completion bash)
  $ facetplot completion zsh > "${fpath[1]}/_facetplot"
  $ facetplot completion fish | source
  PS> facetplot completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.out, true)
			case "zsh":
				return root.GenZshCompletion(c.out)
			case "fish":
				return root.GenFishCompletion(c.out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(c.out)
			}
		},
	}
}

// completeInputs makes cmd complete its arguments to readable table files
// and its --config flag to TOML files.
func completeInputs(cmd *cobra.Command) {
	cmd.ValidArgsFunction = func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return fpio.Extensions(), cobra.ShellCompDirectiveFilterFileExt
	}
	_ = cmd.RegisterFlagCompletionFunc("config", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
	})
}

// completeKind makes --kind complete to the figure kinds.
func completeKind(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{
			string(plot.KindFacet) + "\tboxplot grid, one panel per column",
			string(plot.KindPairs) + "\tscatter/correlation matrix",
		}, cobra.ShellCompDirectiveNoFileComp
	})
}
