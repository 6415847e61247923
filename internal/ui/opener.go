package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/shlex"

	"hnsearch/internal/logging"
)

// BrowserOpener launches URLs in an external browser
type BrowserOpener struct {
	command string
	goos    string
	start   func(name string, args ...string) error
}

// NewBrowserOpener creates an opener. An empty command selects the
// platform default (open, xdg-open or rundll32).
func NewBrowserOpener(command string) *BrowserOpener {
	return &BrowserOpener{
		command: strings.TrimSpace(command),
		goos:    runtime.GOOS,
		start:   startDetached,
	}
}

// Open starts the browser and returns without waiting for it
func (o *BrowserOpener) Open(url string) error {
	name, args, err := o.commandLine(url)
	if err != nil {
		return err
	}
	logging.NewLogger("opener").WithField("command", name).Debug("opening url")
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

func (o *BrowserOpener) commandLine(url string) (string, []string, error) {
	if o.command != "" {
		parts, err := shlex.Split(o.command)
		if err != nil {
			return "", nil, fmt.Errorf("invalid open command %q: %w", o.command, err)
		}
		if len(parts) == 0 {
			return "", nil, fmt.Errorf("invalid open command %q", o.command)
		}
		return parts[0], append(parts[1:], url), nil
	}

	switch o.goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "xdg-open", []string{url}, nil
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// reap the child so it does not linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}
