// Package configutil loads scan profiles from YAML files. A profile names a
// detection option set plus worker-pool settings, so callers can keep scan
// behavior in configuration instead of code.
package configutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/textsift/urlsift/bulkscan"
	"github.com/textsift/urlsift/detect"
)

var (
	// ErrInvalidPath indicates a config path that is empty or escapes its
	// directory.
	ErrInvalidPath = errors.New("invalid config path")

	// ErrUnknownOption indicates an option name with no matching detection
	// flag.
	ErrUnknownOption = errors.New("unknown detection option")

	// ErrUnknownProfile indicates a profile name missing from the file.
	ErrUnknownProfile = errors.New("unknown scan profile")
)

// optionNames maps the YAML spelling of each flag to its bit.
var optionNames = map[string]detect.Options{
	"default":                   detect.Default,
	"quote_match":               detect.QuoteMatch,
	"single_quote_match":        detect.SingleQuoteMatch,
	"bracket_match":             detect.BracketMatch,
	"markup_mode":               detect.MarkupMode,
	"skip_mailto":               detect.SkipMailto,
	"allow_single_level_domain": detect.AllowSingleLevelDomain,
	"extended_scheme_detection": detect.ExtendedSchemeDetection,
	"json":                      detect.JSON,
	"javascript":                detect.Javascript,
	"xml":                       detect.XML,
	"html":                      detect.HTML,
}

// Profile is one named scan configuration.
type Profile struct {
	Options   []string `yaml:"options"`
	Normalize bool     `yaml:"normalize"`
	Workers   int      `yaml:"workers"`
	RateLimit int      `yaml:"rateLimit"`
}

// File is the parsed shape of a scan profile file.
type File struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Load reads and parses a scan profile file.
func Load(path string) (*File, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	// #nosec G304 -- path validated above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan profiles: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scan profiles: %w", err)
	}
	return &file, nil
}

// ScannerConfig resolves the named profile into a bulkscan configuration.
func (f *File) ScannerConfig(name string) (bulkscan.Config, error) {
	profile, ok := f.Profiles[name]
	if !ok {
		return bulkscan.Config{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}

	opts, err := DetectorOptions(profile.Options)
	if err != nil {
		return bulkscan.Config{}, fmt.Errorf("profile %q: %w", name, err)
	}

	return bulkscan.Config{
		Workers:   profile.Workers,
		Options:   opts,
		Normalize: profile.Normalize,
		RateLimit: profile.RateLimit,
	}, nil
}

// DetectorOptions folds a list of option names into one detection flag set.
func DetectorOptions(names []string) (detect.Options, error) {
	opts := detect.Default
	for _, name := range names {
		flag, ok := optionNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return detect.Default, fmt.Errorf("%w: %q", ErrUnknownOption, name)
		}
		opts |= flag
	}
	return opts, nil
}

// validatePath rejects empty paths and parent directory references before
// the file is opened.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains parent directory reference", ErrInvalidPath)
	}
	if strings.Contains(filepath.Clean(path), "..") {
		return fmt.Errorf("%w: cleaned path contains parent directory reference", ErrInvalidPath)
	}
	return nil
}
