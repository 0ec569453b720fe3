package profile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gopasspw/gitconfig"

	"github.com/byterings/git-profile/internal/platform"
)

const (
	// Extension is the file extension for stored profiles.
	Extension = ".gitconfig"

	storeDirName   = "git-profiles"
	activeFileName = ".gitconfig-active"
)

var (
	// ErrNotFound indicates the named profile file does not exist.
	ErrNotFound = errors.New("profile not found")
	// ErrExists indicates a profile with that name already exists.
	ErrExists = errors.New("profile already exists")
)

// Store manages profile files in a single directory, one file per profile.
// The file stem is the canonical profile name.
type Store struct {
	dir        string
	activePath string
}

// DefaultStore returns the store at ~/.config/git-profiles with the active
// snapshot at ~/.gitconfig-active.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &Store{
		dir:        filepath.Join(home, ".config", storeDirName),
		activePath: filepath.Join(home, activeFileName),
	}, nil
}

// NewStore returns a store rooted at dir with the given active snapshot path.
func NewStore(dir, activePath string) *Store {
	return &Store{dir: dir, activePath: activePath}
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// ActivePath returns the path of the active profile snapshot.
func (s *Store) ActivePath() string {
	return s.activePath
}

// Path returns the file path for the named profile.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+Extension)
}

// EnsureDir creates the store directory if it does not exist.
func (s *Store) EnsureDir() error {
	return platform.MkdirSecure(s.dir)
}

// Exists checks whether the named profile file is present.
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && info.Mode().IsRegular()
}

// List returns the names of all stored profiles, sorted alphabetically.
// An empty store is not an error.
func (s *Store) List() ([]string, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}

	sort.Strings(names)
	return names, nil
}

// Read loads and parses the named profile. Missing sections or keys in the
// profile file yield empty fields, not errors.
func (s *Store) Read(name string) (Profile, error) {
	path := s.Path(name)
	if !s.Exists(name) {
		return Profile{}, fmt.Errorf("%w: %s (expected file: %s)", ErrNotFound, name, path)
	}

	cfg, err := gitconfig.LoadConfig(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile %s: %w", name, err)
	}

	var p Profile
	p.Name, _ = cfg.Get("user.name")
	p.Email, _ = cfg.Get("user.email")
	p.Editor, _ = cfg.Get("core.editor")
	return p, nil
}

// ReadRaw returns the raw bytes of the named profile file.
func (s *Store) ReadRaw(name string) ([]byte, error) {
	if !s.Exists(name) {
		return nil, fmt.Errorf("%w: %s (expected file: %s)", ErrNotFound, name, s.Path(name))
	}
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", name, err)
	}
	return data, nil
}

// Write serializes the profile and stores it under the given name. It fails
// with ErrExists when the profile is already present and overwrite is false.
func (s *Store) Write(name string, p Profile, overwrite bool) error {
	if err := s.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	path := s.Path(name)
	if !overwrite && s.Exists(name) {
		return fmt.Errorf("%w: %s (path: %s)", ErrExists, name, path)
	}

	if err := platform.CreateFileSecure(path, []byte(Serialize(p))); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", name, err)
	}
	return nil
}

// Snapshot copies the named profile file to the active snapshot path so the
// current profile can be guessed later. The copy is best-effort; callers may
// warn on failure but must not treat it as fatal.
func (s *Store) Snapshot(name string) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return fmt.Errorf("failed to read profile %s: %w", name, err)
	}
	if err := platform.CreateFileSecure(s.activePath, data); err != nil {
		return fmt.Errorf("failed to write active snapshot: %w", err)
	}
	return nil
}

// GuessActive compares the active snapshot against every stored profile and
// returns the first byte-identical match in sorted name order. It returns an
// empty name when there is no snapshot or no match. The result is a
// best-effort diagnostic, not a source of truth.
func (s *Store) GuessActive() (string, error) {
	active, err := os.ReadFile(s.activePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read active snapshot: %w", err)
	}

	names, err := s.List()
	if err != nil {
		return "", err
	}

	for _, name := range names {
		data, err := os.ReadFile(s.Path(name))
		if err != nil {
			continue
		}
		if bytes.Equal(data, active) {
			return name, nil
		}
	}
	return "", nil
}

// Serialize renders a profile in the fixed section layout used for stored
// files. Sections whose fields are all empty are omitted.
func Serialize(p Profile) string {
	var b strings.Builder
	if p.Name != "" || p.Email != "" {
		b.WriteString("[user]\n")
		if p.Name != "" {
			fmt.Fprintf(&b, "\tname = %s\n", p.Name)
		}
		if p.Email != "" {
			fmt.Fprintf(&b, "\temail = %s\n", p.Email)
		}
	}
	if p.Editor != "" {
		b.WriteString("[core]\n")
		fmt.Fprintf(&b, "\teditor = %s\n", p.Editor)
	}
	return b.String()
}

// ExampleContent is the sample profile shown by the init command.
func ExampleContent() string {
	return Serialize(Profile{
		Name:   "Your Name",
		Email:  "your_email@example.com",
		Editor: "nano",
	})
}
