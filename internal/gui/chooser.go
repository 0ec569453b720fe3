// Package gui implements the graphical profile chooser. It presents the
// stored profiles in a native selection dialog and activates the chosen one.
package gui

import (
	"errors"
	"fmt"

	"github.com/byterings/git-profile/internal/dialog"
	"github.com/byterings/git-profile/internal/git"
	"github.com/byterings/git-profile/internal/identity"
	"github.com/byterings/git-profile/internal/profile"
	"github.com/byterings/git-profile/internal/settings"
	"github.com/byterings/git-profile/internal/ui"
)

const dialogTitle = "Git Profile Switcher"

// ErrNoProfiles indicates the store holds no profiles to choose from.
var ErrNoProfiles = errors.New("no profiles found")

// App bundles the chooser's collaborators so tests can substitute fakes.
type App struct {
	Store  *profile.Store
	Git    git.Config
	Dialog dialog.Dialog
}

// Run wires the default collaborators and runs the chooser once.
func Run() error {
	store, err := profile.DefaultStore()
	if err != nil {
		return err
	}

	// settings.toml may point at a different dialog tool; load failures
	// fall back to zenity.
	s, _ := settings.Load(store.Dir())
	dlg, err := dialog.New(s.DialogTool)
	if err != nil {
		return err
	}

	app := &App{Store: store, Git: git.NewCLI(), Dialog: dlg}
	return app.Choose()
}

// Choose lists the stored profiles, lets the user pick one, activates it and
// reports the resulting identity. A cancelled or empty selection is a no-op,
// not an error.
func (a *App) Choose() error {
	names, err := a.Store.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		if err := a.Dialog.Error(dialogTitle, "No profiles found.\nRun `git-profile init` and create profiles."); err != nil {
			ui.Warning(err.Error())
		}
		return ErrNoProfiles
	}

	choice, ok, err := a.Dialog.List(dialogTitle, "Choose a Git profile to activate:", "Profile", names)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	id, warnings, err := identity.Switch(a.Git, a.Store, choice)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		ui.Warning(warning)
	}

	text := fmt.Sprintf(
		"Activated profile: <b>%s</b>\n\nCurrent identity:\n<b>Name:</b> %s\n<b>Email:</b> %s",
		choice,
		ui.NameOrPlaceholder(id.Name),
		ui.EmailOrPlaceholder(id.Email),
	)
	if err := a.Dialog.Info("Git Profile Updated", text); err != nil {
		ui.Warning(err.Error())
	}

	return nil
}
