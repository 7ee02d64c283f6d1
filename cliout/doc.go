// Package cliout provides structured output formatting for CLI commands with
// cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Multiple output formats (default human-readable and JSON)
//   - ANSI color support with consistent color scheme
//   - Unicode detection with ASCII fallbacks for legacy terminals
//   - Tables with automatic column width calculation
//
// # Basic Usage
//
//	import "github.com/textsift/urlsift/cliout"
//
//	// Print success message
//	cliout.Success("Scan completed successfully")
//
//	// Print error message
//	cliout.Error("Scan failed: %s", err)
//
//	// Print warning
//	cliout.Warning("Profile has no worker setting, using default")
//
//	// Print info message
//	cliout.Info("Scanning %d documents", count)
//
// # Output Formats
//
// The package supports two output formats:
//   - default: Human-readable text with colors and Unicode symbols
//   - json: Structured JSON output for automation and scripting
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Unicode Detection
//
// The package automatically detects terminal Unicode support and falls back to
// ASCII symbols on legacy terminals. Detection includes:
//   - Windows Terminal (via WT_SESSION environment variable)
//   - VS Code integrated terminal (via TERM_PROGRAM environment variable)
//   - ConEmu (via ConEmuPID environment variable)
//   - Unix-like systems (assumed to support Unicode)
//
// # Color Handling
//
// Colors are suppressed when stdout is not a terminal or the NO_COLOR
// environment variable is set, and can be forced on or off with ForceColor
// and NoColor.
//
// # Hybrid Output
//
// The Print function supports hybrid output where you provide both JSON data
// and a formatter function:
//
//	data := map[string]interface{}{"urls": 42}
//	err := cliout.Print(data, func() {
//	    cliout.Success("Found %d URLs", 42)
//	})
//
// In JSON mode, the data is marshaled to JSON. In default mode, the formatter
// is called.
//
// # Tables
//
// Create simple tables with automatic column width calculation:
//
//	headers := []string{"Document", "URLs", "Duration"}
//	rows := []cliout.TableRow{
//	    {"Document": "page-1", "URLs": "12", "Duration": "1.2ms"},
//	    {"Document": "page-2", "URLs": "3", "Duration": "0.4ms"},
//	}
//	cliout.Table(headers, rows)
package cliout
