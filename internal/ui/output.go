package ui

import (
	"fmt"

	"github.com/byterings/git-profile/internal/identity"
)

// PrintProfilesList prints the list of profiles in a formatted way
func PrintProfilesList(names []string, active string) {
	fmt.Println("Available profiles:")
	for _, name := range names {
		indicator := " "
		if name == active && active != "" {
			indicator = "→"
		}
		fmt.Printf(" %s %s\n", indicator, name)
	}
}

// PrintIdentity prints the global git identity with placeholders for unset keys
func PrintIdentity(id identity.Identity) {
	fmt.Println("Current global git identity:")
	fmt.Printf("  user.name  = %s\n", NameOrPlaceholder(id.Name))
	fmt.Printf("  user.email = %s\n", EmailOrPlaceholder(id.Email))
}

// NameOrPlaceholder substitutes a placeholder for an unset user.name
func NameOrPlaceholder(name string) string {
	if name == "" {
		return "(no name)"
	}
	return name
}

// EmailOrPlaceholder substitutes a placeholder for an unset user.email
func EmailOrPlaceholder(email string) string {
	if email == "" {
		return "(no email)"
	}
	return email
}

// Success prints a success message with checkmark
func Success(message string) {
	fmt.Printf("✓ %s\n", message)
}

// Error prints an error message
func Error(message string) {
	fmt.Printf("✗ %s\n", message)
}

// Info prints an info message
func Info(message string) {
	fmt.Printf("ℹ %s\n", message)
}

// Warning prints a warning message
func Warning(message string) {
	fmt.Printf("⚠ %s\n", message)
}
