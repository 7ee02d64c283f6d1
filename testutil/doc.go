// Package testutil provides common testing utilities for urlsift packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Writing throwaway fixture files (WriteFile)
//   - Common string assertions (Contains)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	import (
//	    "testing"
//	    "github.com/textsift/urlsift/testutil"
//	)
//
//	func TestCommand(t *testing.T) {
//	    // Capture stdout from a command
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runCommand()
//	    })
//
//	    // Check output contains expected text
//	    if !testutil.Contains(output, "success") {
//	        t.Error("expected success message")
//	    }
//	}
//
//	func TestWithFixtures(t *testing.T) {
//	    // Write a throwaway config file
//	    path := testutil.WriteFile(t, "profiles.yaml", "profiles: {}")
//	    // path's directory is automatically cleaned up after test
//	}
package testutil
