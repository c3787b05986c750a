package credentials

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"canvascal/internal/cerrors"
)

func TestNormalizeBaseURL(t *testing.T) {
	cases := map[string]string{
		"canvas.instructure.com":          "https://canvas.instructure.com",
		"https://canvas.instructure.com/": "https://canvas.instructure.com",
		"http://localhost:3000":           "http://localhost:3000",
		"  canvas.example.edu ":           "https://canvas.example.edu",
	}

	for input, expected := range cases {
		if got := NormalizeBaseURL(input); got != expected {
			t.Errorf("Expected NormalizeBaseURL(%q) to be %q, got %q", input, expected, got)
		}
	}
}

func TestResolveNonInteractiveWithoutCredentials(t *testing.T) {
	t.Setenv("CANVAS_URL", "")
	t.Setenv("CANVAS_TOKEN", "")

	_, err := Resolve(Options{
		Interactive: false,
		File:        filepath.Join(t.TempDir(), ".env"),
	})
	if !errors.Is(err, cerrors.NoCredentialsError) {
		t.Errorf("Expected NoCredentialsError, got %v", err)
	}
}

func TestResolveFromFile(t *testing.T) {
	t.Setenv("CANVAS_URL", "")
	t.Setenv("CANVAS_TOKEN", "")

	file := filepath.Join(t.TempDir(), ".env")
	err := godotenv.Write(map[string]string{
		"CANVAS_URL":   "canvas.example.edu",
		"CANVAS_TOKEN": "secret-token",
	}, file)
	if err != nil {
		t.Fatalf("writing credential file: %v", err)
	}

	creds, err := Resolve(Options{Interactive: false, File: file})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.BaseURL != "https://canvas.example.edu" {
		t.Errorf("Expected normalized base URL, got %q", creds.BaseURL)
	}
	if creds.Token != "secret-token" {
		t.Errorf("Expected token from file, got %q", creds.Token)
	}
}

func TestResolveFromEnvironment(t *testing.T) {
	t.Setenv("CANVAS_URL", "canvas.example.edu")
	t.Setenv("CANVAS_TOKEN", "env-token")

	creds, err := Resolve(Options{
		Interactive: false,
		File:        filepath.Join(t.TempDir(), ".env"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.BaseURL != "https://canvas.example.edu" || creds.Token != "env-token" {
		t.Errorf("Expected credentials from environment, got %+v", creds)
	}
}

func TestResolveInteractivePromptPersists(t *testing.T) {
	t.Setenv("CANVAS_URL", "")
	t.Setenv("CANVAS_TOKEN", "")

	answers := []string{"canvas.example.edu", "prompted-token"}
	origReadLine, origIsTerminal := readLineFunc, isTerminalFunc
	readLineFunc = func() (string, error) {
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
	isTerminalFunc = func(fd int) bool { return false }
	defer func() {
		readLineFunc, isTerminalFunc = origReadLine, origIsTerminal
	}()

	file := filepath.Join(t.TempDir(), ".env")
	creds, err := Resolve(Options{Interactive: true, File: file})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.BaseURL != "https://canvas.example.edu" || creds.Token != "prompted-token" {
		t.Errorf("Expected prompted credentials, got %+v", creds)
	}

	saved, err := godotenv.Read(file)
	if err != nil {
		t.Fatalf("reading persisted credentials: %v", err)
	}
	if saved["CANVAS_URL"] != "canvas.example.edu" || saved["CANVAS_TOKEN"] != "prompted-token" {
		t.Errorf("Expected prompted credentials persisted, got %v", saved)
	}
}
