package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the contents of a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	name := args[0]
	data, err := store.ReadRaw(name)
	if err != nil {
		return err
	}

	fmt.Printf("# Profile: %s\n", name)
	fmt.Printf("# Path: %s\n", store.Path(name))
	fmt.Println()
	os.Stdout.Write(data)

	return nil
}
