package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cachectl/pagecache"
)

// executeCommand runs the root command with a fresh Options value, the
// way a process invocation would.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts = Options{}
	confirmFlag = false
	logLevelFlag = "info"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTestFile(t *testing.T, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target")
	if err := os.WriteFile(path, make([]byte, size), 0o600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestCheckCommand(t *testing.T) {
	path := writeTestFile(t, 3*pagecache.PageSize())

	out, err := executeCommand(t, "check", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"File:     " + path, "(3 pages)", "Cached:   "} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

func TestCheckCommandDetails(t *testing.T) {
	path := writeTestFile(t, 2*pagecache.PageSize())

	out, err := executeCommand(t, "check", "-d", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Page 0: ") || !strings.Contains(out, "Page 1: ") {
		t.Errorf("detailed output should list both pages, got %q", out)
	}
}

func TestCheckCommandEmptyFile(t *testing.T) {
	path := writeTestFile(t, 0)

	out, err := executeCommand(t, "check", "-v", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "File is empty, nothing to check.") {
		t.Errorf("output %q should report the empty file", out)
	}
	if strings.Contains(out, "File:     ") {
		t.Errorf("no summary expected for an empty file, got %q", out)
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	out, err := executeCommand(t, "check", path)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if strings.Contains(out, "File:     ") {
		t.Errorf("no summary expected on failure, got %q", out)
	}
}

func TestAdviseCommands(t *testing.T) {
	tests := []struct {
		op   string
		want string
	}{
		{"add", "Added to cache: "},
		{"remove", "Removed from cache: "},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			path := writeTestFile(t, 4*pagecache.PageSize())
			out, err := executeCommand(t, tt.op, path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.want+path) {
				t.Errorf("output %q should contain %q", out, tt.want+path)
			}
		})
	}
}

func TestAdviseCommandsVerbose(t *testing.T) {
	size := 4 * pagecache.PageSize()
	path := writeTestFile(t, size)

	out, err := executeCommand(t, "add", "-v", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fmt.Sprintf("Added %s to page cache (%d bytes)", path, size)
	if !strings.Contains(out, want) {
		t.Errorf("output %q should contain %q", out, want)
	}
}

func TestAdviseCommandConfirm(t *testing.T) {
	path := writeTestFile(t, 4*pagecache.PageSize())

	out, err := executeCommand(t, "remove", "--confirm", "--settle", "1ms", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Resident: ") {
		t.Errorf("output %q should contain the post-advisory residency", out)
	}
}

func TestAdviseCommandEmptyFile(t *testing.T) {
	path := writeTestFile(t, 0)

	out, err := executeCommand(t, "remove", "-v", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "File is empty, no operation performed.") {
		t.Errorf("output %q should report the empty file", out)
	}
}

func TestUnknownOperation(t *testing.T) {
	if _, err := executeCommand(t, "frobnicate", "/tmp/whatever"); err == nil {
		t.Fatal("expected an error for an unknown operation")
	}
}

func TestMissingArguments(t *testing.T) {
	if _, err := executeCommand(t, "check"); err == nil {
		t.Fatal("expected an error when the file argument is missing")
	}
}

func TestHelp(t *testing.T) {
	out, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("help output %q should contain usage", out)
	}
}

func TestUnknownLogLevel(t *testing.T) {
	path := writeTestFile(t, pagecache.PageSize())
	if _, err := executeCommand(t, "check", "--log", "chatty", path); err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}
