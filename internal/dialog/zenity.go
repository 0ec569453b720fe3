// Package dialog wraps the zenity dialog utility used by the graphical
// chooser.
package dialog

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/byterings/git-profile/internal/platform"
)

// DefaultTool is the dialog utility used unless overridden in settings.
const DefaultTool = "zenity"

// ErrNotInstalled indicates the dialog utility is not available in PATH.
var ErrNotInstalled = errors.New("dialog tool not found")

// Dialog is the native dialog capability consumed by the graphical chooser.
// It is an interface so tests can substitute a fake.
type Dialog interface {
	// List presents a single-column selection list and returns the chosen
	// item. ok is false when the user cancelled or selected nothing.
	List(title, text, column string, items []string) (choice string, ok bool, err error)
	// Info shows an informational dialog.
	Info(title, text string) error
	// Error shows an error dialog.
	Error(title, text string) error
}

// Zenity implements Dialog by shelling out to zenity (or a compatible tool).
type Zenity struct {
	tool string
}

// New returns a Zenity dialog for the given tool name, or ErrNotInstalled
// when the tool is not in PATH. An empty tool name selects the default.
func New(tool string) (*Zenity, error) {
	if tool == "" {
		tool = DefaultTool
	}
	if !platform.HasCommand(tool) {
		return nil, fmt.Errorf("%w: %s (install it, e.g. `sudo apt install %s`)", ErrNotInstalled, tool, tool)
	}
	return &Zenity{tool: tool}, nil
}

// List presents a selection list. A non-zero exit means the user cancelled;
// that is not an error.
func (z *Zenity) List(title, text, column string, items []string) (string, bool, error) {
	args := []string{
		"--list",
		"--title=" + title,
		"--text=" + text,
		"--column=" + column,
	}
	args = append(args, items...)

	output, err := exec.Command(z.tool, args...).Output()
	if err != nil {
		// Cancelled dialogs exit non-zero.
		return "", false, nil
	}

	choice := strings.TrimSpace(string(output))
	if choice == "" {
		return "", false, nil
	}
	return choice, true, nil
}

// Info shows an informational dialog.
func (z *Zenity) Info(title, text string) error {
	return z.show("--info", title, text)
}

// Error shows an error dialog.
func (z *Zenity) Error(title, text string) error {
	return z.show("--error", title, text)
}

func (z *Zenity) show(kind, title, text string) error {
	cmd := exec.Command(z.tool, kind, "--title="+title, "--text="+text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s dialog failed: %w", z.tool, err)
	}
	return nil
}
