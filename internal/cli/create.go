package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/git-profile/internal/identity"
	"github.com/byterings/git-profile/internal/platform"
	"github.com/byterings/git-profile/internal/profile"
	"github.com/byterings/git-profile/internal/settings"
	"github.com/byterings/git-profile/internal/ui"
)

var (
	createForce    bool
	createActivate bool
	createName     string
	createEmail    string
	createEditor   string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new profile",
	Long: `Create a new profile interactively.

Prompts for user.name, user.email and core.editor with defaults taken from
the current global Git identity. Pass --name/--email/--editor to skip the
prompts entirely.`,
	Args: cobra.ExactArgs(1),
	Example: `  # Interactive mode
  git-profile create personal --activate

  # Using flags
  git-profile create work --name "John Doe" --email "john@work.com"`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().BoolVar(&createForce, "force", false, "Overwrite existing profile if it exists")
	createCmd.Flags().BoolVar(&createActivate, "activate", false, "Activate the profile immediately after creating it")
	createCmd.Flags().StringVar(&createName, "name", "", "Full name for Git commits (skips prompt)")
	createCmd.Flags().StringVar(&createEmail, "email", "", "Email address for Git commits (skips prompt)")
	createCmd.Flags().StringVar(&createEditor, "editor", "", "Editor for commit messages (skips prompt)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	name := args[0]
	if !createForce && store.Exists(name) {
		return fmt.Errorf("%w: %s (path: %s, use --force to overwrite)", profile.ErrExists, name, store.Path(name))
	}

	var p profile.Profile
	if createName != "" || createEmail != "" || createEditor != "" {
		// Flag mode
		p = profile.Profile{Name: createName, Email: createEmail, Editor: createEditor}
	} else {
		// Interactive mode
		fmt.Printf("Creating profile: %s\n", name)
		fmt.Println("(Press Enter to accept the default.)")
		fmt.Println()

		p, err = ui.PromptProfile(createDefaults(store.Dir()))
		if err != nil {
			return err
		}
	}

	if p.IsEmpty() {
		ui.Warning("profile defines no keys; activating it will change nothing")
	}

	if err := store.Write(name, p, createForce); err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Saved profile: %s", name))
	fmt.Printf("   -> %s\n", store.Path(name))

	if createActivate {
		fmt.Println()
		return switchProfile(store, name)
	}

	return nil
}

// createDefaults seeds the prompts from the current global identity, with
// hardcoded fallbacks when git has nothing configured. settings.toml may
// override the editor suggestion.
func createDefaults(storeDir string) ui.ProfileDefaults {
	defaults := ui.ProfileDefaults{
		Name:   "Your Name",
		Email:  "your_email@example.com",
		Editor: platform.GetEditorSuggestion(),
	}

	cfg := newGitConfig()
	if name, ok := cfg.Get(identity.KeyName); ok {
		defaults.Name = name
	}
	if email, ok := cfg.Get(identity.KeyEmail); ok {
		defaults.Email = email
	}

	// Missing or unreadable settings just keep the platform suggestion.
	if s, err := settings.Load(storeDir); err == nil && s.DefaultEditor != "" {
		defaults.Editor = s.DefaultEditor
	}

	return defaults
}
