package platform

import (
	"os"
	"os/exec"
	"runtime"
)

// MkdirSecure creates a directory with appropriate permissions for the platform
func MkdirSecure(path string) error {
	if runtime.GOOS == "windows" {
		// Windows doesn't use Unix permissions
		return os.MkdirAll(path, 0755)
	}
	// Unix/Linux: use restrictive permissions
	return os.MkdirAll(path, 0700)
}

// CreateFileSecure creates a file with appropriate permissions for the platform
func CreateFileSecure(path string, data []byte) error {
	if runtime.GOOS == "windows" {
		return os.WriteFile(path, data, 0644)
	}
	// Unix/Linux: use restrictive permissions
	return os.WriteFile(path, data, 0600)
}

// HasCommand checks if a command is available in PATH
func HasCommand(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// GetEditorSuggestion returns the suggested text editor command for the platform
func GetEditorSuggestion() string {
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "nano"
}

