// Command urlsift detects and normalizes URLs in plain text.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/textsift/urlsift/cliout"
	"github.com/textsift/urlsift/logutil"
	"github.com/textsift/urlsift/scancmd"
	"github.com/textsift/urlsift/version"
)

// Set via ldflags at build time.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		cliout.Error("%s", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		outputFormat string
		debug        bool
	)

	root := &cobra.Command{
		Use:           "urlsift",
		Short:         "Detect and normalize URLs in plain text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug, outputFormat == "json")
			return cliout.SetFormat(outputFormat)
		},
	}

	bindGlobalFlags(root.PersistentFlags(), &outputFormat, &debug)

	info := version.New("urlsift")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	root.AddCommand(scancmd.NewCommand(&outputFormat))
	root.AddCommand(version.NewCommand(info, &outputFormat))

	return root
}

func bindGlobalFlags(flags *pflag.FlagSet, outputFormat *string, debug *bool) {
	flags.StringVarP(outputFormat, "output", "f", "default", "Output format (default, json)")
	flags.BoolVar(debug, "debug", false, "Enable debug logging")
}
