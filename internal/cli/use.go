package cli

import (
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Activate a profile by name",
	Long: `Switch the global Git identity to the named profile.

Sets user.name and user.email via 'git config --global' from the profile file
and prints the resulting identity.`,
	Args: cobra.ExactArgs(1),
	Example: `  git-profile use personal
  git-profile use work`,
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	return switchProfile(store, args[0])
}
