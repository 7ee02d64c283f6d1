// Package scancmd implements the urlsift scan command: it reads text from
// files or stdin, detects the URLs inside, and prints them in human-readable
// or JSON form.
package scancmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/textsift/urlsift/bulkscan"
	"github.com/textsift/urlsift/cliout"
	"github.com/textsift/urlsift/configutil"
	"github.com/textsift/urlsift/logutil"
)

type scanFlags struct {
	configPath string
	profile    string
	options    []string
	normalize  bool
	workers    int
	rateLimit  int
}

// scanResult is the JSON shape for one scanned document.
type scanResult struct {
	Document string   `json:"document"`
	URLs     []string `json:"urls"`
	Duration string   `json:"duration"`
	Error    string   `json:"error,omitempty"`
}

// NewCommand creates the scan command. outputFormat is the root command's
// output format flag.
func NewCommand(outputFormat *string) *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Detect URLs in files or stdin",
		Long: `Detect URLs in the given files, or in stdin when no files are named.

Detection behavior is controlled either by a named profile from a YAML config
file (--config/--profile) or directly by option flags (--option). Option names
match the config file spelling: quote_match, single_quote_match, bracket_match,
markup_mode, skip_mailto, allow_single_level_domain, extended_scheme_detection,
plus the composite profiles json, javascript, xml and html.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML scan profile file")
	cmd.Flags().StringVarP(&flags.profile, "profile", "p", "", "Profile name from the config file")
	cmd.Flags().StringSliceVarP(&flags.options, "option", "o", nil, "Detection option names (repeatable)")
	cmd.Flags().BoolVarP(&flags.normalize, "normalize", "n", false, "Normalize detected URLs")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "Concurrent scan workers")
	cmd.Flags().IntVar(&flags.rateLimit, "rate-limit", 0, "Maximum documents scanned per second")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, flags *scanFlags, outputFormat *string) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	docs, err := collectDocuments(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	log := logutil.NewLogger("scancmd")
	if flags.profile != "" {
		log = log.WithProfile(flags.profile)
	}
	log.Debug("scan starting", "documents", len(docs), "workers", cfg.Workers)

	results, err := bulkscan.New(cfg).Scan(cmd.Context(), docs)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	format := ""
	if outputFormat != nil {
		format = *outputFormat
	}
	return render(results, format)
}

// resolveConfig builds the scanner configuration from a profile file when
// one is named, and from the direct flags otherwise. Direct flags override
// the profile's settings either way.
func resolveConfig(flags *scanFlags) (bulkscan.Config, error) {
	var cfg bulkscan.Config

	if flags.configPath != "" {
		if flags.profile == "" {
			return cfg, fmt.Errorf("--config requires --profile")
		}
		file, err := configutil.Load(flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg, err = file.ScannerConfig(flags.profile)
		if err != nil {
			return cfg, err
		}
	}

	if len(flags.options) > 0 {
		opts, err := configutil.DetectorOptions(flags.options)
		if err != nil {
			return cfg, err
		}
		cfg.Options = opts
	}
	if flags.normalize {
		cfg.Normalize = true
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.rateLimit > 0 {
		cfg.RateLimit = flags.rateLimit
	}

	return cfg, nil
}

// collectDocuments reads each named file into a document, or all of stdin
// into a single document when no files are named.
func collectDocuments(stdin io.Reader, args []string) ([]bulkscan.Document, error) {
	if len(args) == 0 {
		text, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []bulkscan.Document{{ID: "stdin", Text: string(text)}}, nil
	}

	docs := make([]bulkscan.Document, 0, len(args))
	for _, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, bulkscan.Document{ID: path, Text: string(text)})
	}
	return docs, nil
}

func render(results []bulkscan.Result, format string) error {
	out := make([]scanResult, len(results))
	total := 0
	for i, res := range results {
		urls := make([]string, len(res.URLs))
		for j, u := range res.URLs {
			urls[j] = u.FullURL()
		}
		total += len(urls)

		out[i] = scanResult{
			Document: res.ID,
			URLs:     urls,
			Duration: res.Duration.String(),
		}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		}
	}

	if format == "json" {
		return cliout.PrintJSON(out)
	}

	for _, res := range out {
		cliout.Header(res.Document)
		if res.Error != "" {
			cliout.Error("%s", res.Error)
			continue
		}
		if len(res.URLs) == 0 {
			cliout.Info("no URLs found")
			continue
		}
		for _, u := range res.URLs {
			cliout.Item("%s", cliout.URL(u))
		}
	}

	cliout.Newline()
	cliout.Success("found %s URLs in %d document(s)", cliout.Count(total), len(out))
	return nil
}
