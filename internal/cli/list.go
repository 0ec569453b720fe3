package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/byterings/git-profile/internal/profile"
	"github.com/byterings/git-profile/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available profiles",
	Long:    `Display all stored profiles and highlight the one guessed to be active.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	names, err := store.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Printf("No profiles found in %s\n", store.Dir())
		fmt.Println("Create one, e.g.:")
		fmt.Printf("  %s\n", filepath.Join(store.Dir(), "personal"+profile.Extension))
		return nil
	}

	// Best-effort highlight; an unreadable snapshot just loses the marker.
	active, _ := store.GuessActive()
	ui.PrintProfilesList(names, active)

	return nil
}
