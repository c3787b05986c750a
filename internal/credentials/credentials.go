package credentials

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"canvascal/internal/cerrors"
)

// Credentials holds everything needed to talk to the Canvas API. Read-only
// after resolution.
type Credentials struct {
	BaseURL string
	Token   string
}

// Options controls how credentials are resolved.
type Options struct {
	// Interactive allows prompting on stdin when no stored credentials exist.
	// Must be false in the HTTP deployment, where absence of credentials has
	// to surface as a request-level error instead of a blocked prompt.
	Interactive bool
	// File is the key=value credential file read first and (re)written after
	// an interactive prompt.
	File string
}

var (
	readPasswordFunc = term.ReadPassword // mockable
	readLineFunc     = readLine          // mockable
	isTerminalFunc   = term.IsTerminal   // mockable
)

// Resolve returns Canvas credentials from the credential file or process
// environment, prompting interactively as a last resort when allowed.
// Freshly prompted values are persisted so the next resolution skips the
// prompt. Token validity is not checked here; the first remote call does that.
func Resolve(opts Options) (*Credentials, error) {
	url, token := fromEnv(opts.File)
	if url != "" && token != "" {
		return &Credentials{BaseURL: NormalizeBaseURL(url), Token: token}, nil
	}

	if !opts.Interactive {
		return nil, cerrors.NoCredentialsError
	}

	url, token, err := prompt()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cerrors.NoCredentialsError, err)
	}

	if err := persist(opts.File, url, token); err != nil {
		return nil, fmt.Errorf("saving credentials: %w", err)
	}

	return &Credentials{BaseURL: NormalizeBaseURL(url), Token: token}, nil
}

// NormalizeBaseURL makes sure the Canvas URL carries a scheme, defaulting
// to https.
func NormalizeBaseURL(url string) string {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return strings.TrimRight(url, "/")
}

func fromEnv(file string) (url, token string) {
	if env, err := godotenv.Read(file); err == nil {
		url = env["CANVAS_URL"]
		token = env["CANVAS_TOKEN"]
	}
	if url == "" {
		url = os.Getenv("CANVAS_URL")
	}
	if token == "" {
		token = os.Getenv("CANVAS_TOKEN")
	}
	return url, token
}

func prompt() (url, token string, err error) {
	fmt.Println("Please enter your Canvas credentials:")
	fmt.Print("Canvas URL (e.g., https://canvas.instructure.com): ")
	url, err = readLineFunc()
	if err != nil {
		return "", "", err
	}

	fmt.Print("Canvas API Token: ")
	if isTerminalFunc(syscall.Stdin) {
		var pwd []byte
		pwd, err = readPasswordFunc(syscall.Stdin)
		fmt.Println()
		token = string(pwd)
	} else {
		token, err = readLineFunc()
	}
	if err != nil {
		return "", "", err
	}

	url = strings.TrimSpace(url)
	token = strings.TrimSpace(token)
	if url == "" || token == "" {
		return "", "", fmt.Errorf("empty URL or token")
	}
	return url, token, nil
}

func persist(file, url, token string) error {
	return godotenv.Write(map[string]string{
		"CANVAS_URL":   url,
		"CANVAS_TOKEN": token,
	}, file)
}

func readLine() (string, error) {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
