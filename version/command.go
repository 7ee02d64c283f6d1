package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textsift/urlsift/cliout"
)

// NewCommand builds the version subcommand. outputFormat, when non-nil,
// points at the root command's --output flag so "-o json" reaches this
// command too; quiet wins over it, printing only the bare version number
// for use in shell scripts.
func NewCommand(info *Info, outputFormat *string) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Show the %s version", info.Name),
		Long: fmt.Sprintf(`Show the %[1]s version, build date, and git commit.

Examples:
  %[1]s version            human-readable build details
  %[1]s version --quiet    just the version number
  %[1]s -o json version    machine-readable JSON`, info.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quiet {
				fmt.Println(info.Version)
				return nil
			}

			if outputFormat != nil && *outputFormat == "json" {
				return cliout.PrintJSON(info)
			}

			cliout.Header(fmt.Sprintf("%s Version", info.Name))
			cliout.Label("Version", info.Version)
			cliout.Label("Build Date", info.BuildDate)
			cliout.Label("Git Commit", info.GitCommit)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the version number")
	return cmd
}
