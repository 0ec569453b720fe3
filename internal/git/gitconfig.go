package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Config is the global Git configuration as seen by this tool. It is an
// injected capability so tests can substitute a fake for the real executable.
type Config interface {
	// Get returns the value of a global config key, or ok=false when the
	// key is unset or git is unavailable.
	Get(key string) (value string, ok bool)
	// Set writes a global config key.
	Set(key, value string) error
}

// CLI implements Config by shelling out to `git config --global`.
type CLI struct {
	gitPath string
}

// NewCLI returns a Config backed by the git executable.
func NewCLI() *CLI {
	return &CLI{gitPath: "git"}
}

// Get reads a global config value. A missing executable, a non-zero exit, or
// an empty value all report the key as absent; reads never fail hard.
func (c *CLI) Get(key string) (string, bool) {
	cmd := exec.Command(c.gitPath, "config", "--global", key)
	output, err := cmd.Output()
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(string(output))
	if value == "" {
		return "", false
	}
	return value, true
}

// Set writes a global config value.
func (c *CLI) Set(key, value string) error {
	cmd := exec.Command(c.gitPath, "config", "--global", key, value)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git config --global %s failed: %s: %w", key, strings.TrimSpace(string(output)), err)
	}
	return nil
}

// IsInstalled checks if git is installed
func IsInstalled() bool {
	cmd := exec.Command("git", "--version")
	return cmd.Run() == nil
}
