package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("test output")
			return nil
		})

		if !strings.Contains(output, "test output") {
			t.Errorf("expected output to contain 'test output', got: %s", output)
		}
	})

	t.Run("captures multiple lines", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("line 1")
			fmt.Println("line 2")
			fmt.Println("line 3")
			return nil
		})

		if !strings.Contains(output, "line 1") {
			t.Error("expected output to contain 'line 1'")
		}
		if !strings.Contains(output, "line 2") {
			t.Error("expected output to contain 'line 2'")
		}
		if !strings.Contains(output, "line 3") {
			t.Error("expected output to contain 'line 3'")
		}
	})

	t.Run("restores stdout on error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		output := CaptureOutput(t, func() error {
			fmt.Println("output before error")
			return expectedErr
		})

		if !strings.Contains(output, "output before error") {
			t.Error("expected output to contain 'output before error'")
		}

		// Verify stdout is restored by printing to it
		fmt.Println("stdout restored")
	})

	t.Run("handles empty output", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			return nil
		})

		if output != "" {
			t.Errorf("expected empty output, got: %s", output)
		}
	})

	t.Run("captures fmt.Print without newline", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Print("no newline")
			return nil
		})

		if !strings.Contains(output, "no newline") {
			t.Errorf("expected output to contain 'no newline', got: %s", output)
		}
	})

	t.Run("captures mixed fmt.Print and fmt.Println", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Print("part1")
			fmt.Println(" part2")
			fmt.Print("part3")
			return nil
		})

		expected := "part1 part2\npart3"
		if output != expected {
			t.Errorf("expected '%s', got: '%s'", expected, output)
		}
	})

	t.Run("captures large output", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			// Generate output larger than the 1024 byte buffer
			for i := 0; i < 200; i++ {
				fmt.Printf("line %d with some extra text to make it longer\n", i)
			}
			return nil
		})

		// Verify we got all the output
		if !strings.Contains(output, "line 0") {
			t.Error("expected to find first line")
		}
		if !strings.Contains(output, "line 199") {
			t.Error("expected to find last line")
		}

		// Count lines to ensure we got everything
		lines := strings.Split(output, "\n")
		// Should have 200 lines plus 1 empty line from trailing newline
		if len(lines) < 200 {
			t.Errorf("expected at least 200 lines, got %d", len(lines))
		}
	})
}

func TestTempDir(t *testing.T) {
	t.Run("creates directory", func(t *testing.T) {
		tmpDir := TempDir(t)

		// Verify directory exists
		info, err := os.Stat(tmpDir)
		if err != nil {
			t.Fatalf("temp directory does not exist: %v", err)
		}
		if !info.IsDir() {
			t.Error("temp path is not a directory")
		}
	})

	t.Run("creates unique directories", func(t *testing.T) {
		tmpDir1 := TempDir(t)
		tmpDir2 := TempDir(t)

		if tmpDir1 == tmpDir2 {
			t.Error("expected unique directories")
		}
	})

	t.Run("directory is writable", func(t *testing.T) {
		tmpDir := TempDir(t)

		// Try to create a file in the directory
		testFile := filepath.Join(tmpDir, "test.txt")
		if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to write to temp directory: %v", err)
		}

		// Verify file was created
		if _, err := os.Stat(testFile); err != nil {
			t.Errorf("test file not created: %v", err)
		}
	})

	t.Run("directory has urlsift-test prefix", func(t *testing.T) {
		tmpDir := TempDir(t)
		baseName := filepath.Base(tmpDir)

		if !strings.HasPrefix(baseName, "urlsift-test-") {
			t.Errorf("expected directory name to have 'urlsift-test-' prefix, got: %s", baseName)
		}
	})

	t.Run("nested directories in temp dir", func(t *testing.T) {
		tmpDir := TempDir(t)

		// Create nested structure
		nestedPath := filepath.Join(tmpDir, "a", "b", "c")
		if err := os.MkdirAll(nestedPath, 0750); err != nil {
			t.Fatalf("failed to create nested structure: %v", err)
		}

		// Verify nested directory exists
		if info, err := os.Stat(nestedPath); err != nil {
			t.Errorf("nested directory not created: %v", err)
		} else if !info.IsDir() {
			t.Error("nested path is not a directory")
		}
	})
}

func TestWriteFile(t *testing.T) {
	t.Run("writes content to named file", func(t *testing.T) {
		path := WriteFile(t, "fixture.yaml", "profiles: {}")

		if filepath.Base(path) != "fixture.yaml" {
			t.Errorf("expected file named fixture.yaml, got: %s", path)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(content) != "profiles: {}" {
			t.Errorf("unexpected content: %s", content)
		}
	})

	t.Run("separate calls use separate directories", func(t *testing.T) {
		path1 := WriteFile(t, "a.txt", "one")
		path2 := WriteFile(t, "a.txt", "two")

		if path1 == path2 {
			t.Error("expected distinct paths for separate calls")
		}
	})
}

func TestContains(t *testing.T) {
	t.Run("finds substring", func(t *testing.T) {
		if !Contains("hello world", "world") {
			t.Error("expected to find 'world' in 'hello world'")
		}
	})

	t.Run("returns false when substring not found", func(t *testing.T) {
		if Contains("hello world", "foo") {
			t.Error("expected not to find 'foo' in 'hello world'")
		}
	})

	t.Run("handles empty substring", func(t *testing.T) {
		// Empty string is always contained
		if !Contains("hello", "") {
			t.Error("expected empty string to be contained")
		}
	})

	t.Run("handles empty string", func(t *testing.T) {
		if Contains("", "hello") {
			t.Error("expected not to find 'hello' in empty string")
		}
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		if Contains("Hello World", "hello") {
			t.Error("expected case-sensitive comparison")
		}
		if !Contains("Hello World", "Hello") {
			t.Error("expected to find 'Hello' with correct case")
		}
	})
}

// Test integration: using multiple helpers together
func TestIntegration(t *testing.T) {
	t.Run("capture output to temp file", func(t *testing.T) {
		tmpDir := TempDir(t)

		// Capture output
		output := CaptureOutput(t, func() error {
			fmt.Println("test output to capture")
			return nil
		})

		// Write to temp file
		outputFile := filepath.Join(tmpDir, "output.txt")
		if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
			t.Fatalf("failed to write output file: %v", err)
		}

		// Read back and verify
		content, err := os.ReadFile(outputFile)
		if err != nil {
			t.Fatalf("failed to read output file: %v", err)
		}

		if !Contains(string(content), "test output to capture") {
			t.Error("expected to find output in file")
		}
	})
}
