// Package identity implements the profile switch operation shared by the CLI
// and the graphical chooser.
package identity

import (
	"fmt"

	"github.com/byterings/git-profile/internal/git"
	"github.com/byterings/git-profile/internal/profile"
)

// Git config keys managed by this tool.
const (
	KeyName   = "user.name"
	KeyEmail  = "user.email"
	KeyEditor = "core.editor"
)

// Identity is the global Git identity as reported by the git executable.
// Empty fields mean the key is unset.
type Identity struct {
	Name  string
	Email string
}

// Current reads the effective global identity. Unavailable git degrades to an
// empty identity.
func Current(cfg git.Config) Identity {
	var id Identity
	id.Name, _ = cfg.Get(KeyName)
	id.Email, _ = cfg.Get(KeyEmail)
	return id
}

// Switch activates the named profile: it applies user.name and user.email to
// the global Git config, snapshots the profile file, and returns the identity
// re-read from git afterwards so callers see actual external state.
//
// Failures to write a config key or to snapshot are returned as warnings, not
// errors; only a missing profile aborts the switch.
func Switch(cfg git.Config, store *profile.Store, name string) (Identity, []string, error) {
	p, err := store.Read(name)
	if err != nil {
		return Identity{}, nil, err
	}

	var warnings []string
	if p.Name != "" {
		if err := cfg.Set(KeyName, p.Name); err != nil {
			warnings = append(warnings, fmt.Sprintf("could not set %s: %v", KeyName, err))
		}
	}
	if p.Email != "" {
		if err := cfg.Set(KeyEmail, p.Email); err != nil {
			warnings = append(warnings, fmt.Sprintf("could not set %s: %v", KeyEmail, err))
		}
	}

	// Snapshot is best-effort; `current` only uses it to guess the active
	// profile.
	if err := store.Snapshot(name); err != nil {
		warnings = append(warnings, fmt.Sprintf("could not snapshot active profile: %v", err))
	}

	return Current(cfg), warnings, nil
}
