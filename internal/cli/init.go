package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/byterings/git-profile/internal/profile"
	"github.com/byterings/git-profile/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Show setup instructions and create the profiles directory",
	Long:  `Create the profile directory and print instructions for adding profiles. This is optional - the directory is also created on first use.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	if err := store.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	ui.Success(fmt.Sprintf("Profile directory ready: %s", store.Dir()))
	fmt.Println()
	fmt.Println("Create profiles like:")
	fmt.Printf("  %s\n", filepath.Join(store.Dir(), "personal"+profile.Extension))
	fmt.Printf("  %s\n", filepath.Join(store.Dir(), "work"+profile.Extension))
	fmt.Println()
	fmt.Println("Example profile content:")
	fmt.Print(profile.ExampleContent())
	fmt.Println()
	fmt.Println("Or use:")
	fmt.Println("  git-profile create personal --activate")
	fmt.Println("  git-profile create work")

	return nil
}
