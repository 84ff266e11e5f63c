package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Launcher hands URLs to the outside world: a browser or the clipboard
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	logger  *slog.Logger

	openDefault func(url string) error
	copyText    func(text string) error
}

// NewLauncher creates a new Launcher. An empty command uses the system browser.
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command:     command,
		args:        args,
		logger:      logger,
		openDefault: browser.OpenURL,
		copyText:    clipboard.WriteAll,
	}
}

// Open opens url in the configured browser or the system default
func (l *Launcher) Open(url string) error {
	// Tier 1: User configured a specific browser
	if l.command != "" {
		err := l.launchConfigured(url)
		if err == nil {
			return nil
		}
		l.logger.Warn("configured browser failed, using system default", "command", l.command, "error", err)
	}

	// Tier 2: Fall back to system default (open/xdg-open/start)
	l.logger.Info("opening with system default", "os", runtime.GOOS, "url", url)
	if err := l.openDefault(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// Copy places text on the system clipboard
func (l *Launcher) Copy(text string) error {
	if err := l.copyText(text); err != nil {
		l.logger.Warn("clipboard write failed", "error", err)
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	l.logger.Debug("copied to clipboard", "text", text)
	return nil
}

// launchConfigured starts the configured browser; URL goes at the end
func (l *Launcher) launchConfigured(url string) error {
	if _, err := exec.LookPath(l.command); err != nil {
		return err
	}
	args := append(append([]string{}, l.args...), url)
	l.logger.Info("launching browser", "command", l.command, "args", args)
	return exec.Command(l.command, args...).Start() // Start async, don't wait
}
