// Package cli implements the git-profile command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/byterings/git-profile/internal/git"
	"github.com/byterings/git-profile/internal/profile"
	"github.com/byterings/git-profile/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "git-profile",
	Short: "Simple Git identity switcher",
	Long: `git-profile - simple Git identity switcher

Profiles are stored as:
  ~/.config/git-profiles/<name>.gitconfig

Each profile can define:
  [user]
      name = ...
      email = ...
  [core]
      editor = ...

'git-profile use <name>' will set:

  git config --global user.name
  git config --global user.email

from the selected profile.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Injection points for tests; production code uses the real store and the
// git executable.
var (
	newStore     = profile.DefaultStore
	newGitConfig = func() git.Config { return git.NewCLI() }
	gitInstalled = git.IsInstalled
)

// Execute runs the root command. Running without a subcommand prints help and
// exits zero; an interruption prints a message and exits non-zero.
func Execute() {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		// Ctrl-C outside a prompt; survey reports interrupts inside
		// prompts as terminal.InterruptErr instead.
		<-interrupted
		fmt.Fprintln(os.Stderr, "\nInterrupted.")
		os.Exit(1)
	}()

	os.Exit(run())
}

// run executes the root command and maps errors to an exit code.
func run() int {
	if err := rootCmd.Execute(); err != nil {
		return fail(err)
	}
	return 0
}

// fail reports a command error and returns the process exit code.
func fail(err error) int {
	if errors.Is(err, terminal.InterruptErr) {
		fmt.Fprintln(os.Stderr, "\nInterrupted.")
		return 1
	}
	ui.Error(err.Error())
	return 1
}
