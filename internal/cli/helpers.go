package cli

import (
	"fmt"

	"github.com/byterings/git-profile/internal/identity"
	"github.com/byterings/git-profile/internal/profile"
	"github.com/byterings/git-profile/internal/ui"
)

// switchProfile activates the named profile and prints the resulting
// identity. Shared by `use` and `create --activate`.
func switchProfile(store *profile.Store, name string) error {
	if !gitInstalled() {
		ui.Warning("git is not installed; identity changes cannot be applied")
	}

	cfg := newGitConfig()

	id, warnings, err := identity.Switch(cfg, store, name)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		ui.Warning(warning)
	}

	ui.Success(fmt.Sprintf("Activated profile: %s", name))
	fmt.Println()
	ui.PrintIdentity(id)
	return nil
}
