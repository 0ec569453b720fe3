package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/git-profile/internal/identity"
	"github.com/byterings/git-profile/internal/ui"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current global identity",
	Long:  `Display the global Git identity and, when possible, which stored profile it came from.`,
	Args:  cobra.NoArgs,
	RunE:  runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

func runCurrent(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	if err := store.EnsureDir(); err != nil {
		return err
	}

	if !gitInstalled() {
		ui.Info("git is not installed; user.name and user.email read as unset")
	}

	ui.PrintIdentity(identity.Current(newGitConfig()))

	// The guess compares the active snapshot byte-for-byte against stored
	// profiles; it is diagnostic only and silence means no match.
	name, err := store.GuessActive()
	if err == nil && name != "" {
		fmt.Printf("Guessed active profile: %s\n", name)
	}

	return nil
}
