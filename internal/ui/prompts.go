package ui

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"

	"github.com/byterings/git-profile/internal/profile"
)

// ProfileDefaults seeds the interactive prompts; pressing Enter accepts the
// shown default.
type ProfileDefaults struct {
	Name   string
	Email  string
	Editor string
}

// PromptProfile prompts for the profile fields interactively
func PromptProfile(defaults ProfileDefaults) (profile.Profile, error) {
	var p profile.Profile

	namePrompt := &survey.Input{
		Message: "Git user.name:",
		Default: defaults.Name,
		Help:    "Your full name for Git commits (e.g., John Doe)",
	}
	if err := survey.AskOne(namePrompt, &p.Name); err != nil {
		return profile.Profile{}, err
	}

	emailPrompt := &survey.Input{
		Message: "Git user.email:",
		Default: defaults.Email,
		Help:    "Your email for Git commits (e.g., john@example.com)",
	}
	emailValidator := func(val interface{}) error {
		if str, ok := val.(string); ok && str != "" {
			if !isValidEmail(str) {
				return fmt.Errorf("invalid email format")
			}
		}
		return nil
	}
	if err := survey.AskOne(emailPrompt, &p.Email, survey.WithValidator(emailValidator)); err != nil {
		return profile.Profile{}, err
	}

	editorPrompt := &survey.Input{
		Message: "core.editor:",
		Default: defaults.Editor,
		Help:    "Editor Git opens for commit messages (e.g., nano, vim)",
	}
	if err := survey.AskOne(editorPrompt, &p.Editor); err != nil {
		return profile.Profile{}, err
	}

	return p, nil
}

// isValidEmail checks if email format is valid
func isValidEmail(email string) bool {
	// Simple email validation regex
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}
