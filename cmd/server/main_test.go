package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "HOCKEY_TEST_FROM_FILE=file\nHOCKEY_TEST_PRESET=file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("HOCKEY_TEST_PRESET", "env")
	t.Setenv("HOCKEY_TEST_FROM_FILE", "")
	os.Unsetenv("HOCKEY_TEST_FROM_FILE")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("expected .env to load, got %v", err)
	}
	if got := os.Getenv("HOCKEY_TEST_FROM_FILE"); got != "file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("HOCKEY_TEST_PRESET"); got != "env" {
		t.Fatalf("expected real environment to win, got %q", got)
	}
}

func TestLoadDotEnvReportsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BAD-KEY=value\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	if err := loadDotEnv(path); err == nil {
		t.Fatalf("expected malformed .env to error")
	}
}
