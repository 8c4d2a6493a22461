package notice

import (
	"fmt"
	"os/exec"
	"runtime"
)

// URLOpener opens a URL outside the game, normally in a browser.
type URLOpener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to URLOpener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// SystemOpener hands the URL to the desktop's default handler.
type SystemOpener struct {
	// GOOS overrides runtime.GOOS, for tests.
	GOOS string
	// Start runs the command; defaults to (*exec.Cmd).Start.
	Start func(*exec.Cmd) error
}

func (o SystemOpener) Open(url string) error {
	cmd, err := o.command(url)
	if err != nil {
		return err
	}
	start := o.Start
	if start == nil {
		start = (*exec.Cmd).Start
	}
	if err := start(cmd); err != nil {
		return fmt.Errorf("notice: open %s: %w", url, err)
	}
	return nil
}

func (o SystemOpener) command(url string) (*exec.Cmd, error) {
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return exec.Command("xdg-open", url), nil
	default:
		return nil, fmt.Errorf("notice: no URL handler for %s", goos)
	}
}
