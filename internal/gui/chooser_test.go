package gui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byterings/git-profile/internal/profile"
)

type fakeConfig struct {
	values map[string]string
}

func (f *fakeConfig) Get(key string) (string, bool) {
	value, ok := f.values[key]
	return value, ok && value != ""
}

func (f *fakeConfig) Set(key, value string) error {
	f.values[key] = value
	return nil
}

type fakeDialog struct {
	choice string
	ok     bool

	listedItems []string
	infoTexts   []string
	errorTexts  []string
}

func (d *fakeDialog) List(title, text, column string, items []string) (string, bool, error) {
	d.listedItems = items
	return d.choice, d.ok, nil
}

func (d *fakeDialog) Info(title, text string) error {
	d.infoTexts = append(d.infoTexts, text)
	return nil
}

func (d *fakeDialog) Error(title, text string) error {
	d.errorTexts = append(d.errorTexts, text)
	return nil
}

func newTestApp(t *testing.T) (*App, *fakeConfig, *fakeDialog) {
	t.Helper()

	dir := t.TempDir()
	store := profile.NewStore(filepath.Join(dir, "git-profiles"), filepath.Join(dir, ".gitconfig-active"))
	cfg := &fakeConfig{values: map[string]string{}}
	dlg := &fakeDialog{}
	return &App{Store: store, Git: cfg, Dialog: dlg}, cfg, dlg
}

func TestChooseNoProfiles(t *testing.T) {
	app, _, dlg := newTestApp(t)

	err := app.Choose()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoProfiles))
	require.Len(t, dlg.errorTexts, 1)
	assert.Contains(t, dlg.errorTexts[0], "No profiles found")
}

func TestChooseCancelled(t *testing.T) {
	app, cfg, dlg := newTestApp(t)
	require.NoError(t, app.Store.Write("work", profile.Profile{Name: "Bob"}, false))
	dlg.ok = false

	require.NoError(t, app.Choose())

	// Cancelling changes nothing and shows no info dialog.
	assert.Empty(t, cfg.values)
	assert.Empty(t, dlg.infoTexts)
}

func TestChooseActivatesProfile(t *testing.T) {
	app, cfg, dlg := newTestApp(t)
	require.NoError(t, app.Store.Write("personal", profile.Profile{Name: "Alice", Email: "alice@home.org"}, false))
	require.NoError(t, app.Store.Write("work", profile.Profile{Name: "Bob", Email: "bob@x.com"}, false))
	dlg.choice = "work"
	dlg.ok = true

	require.NoError(t, app.Choose())

	assert.Equal(t, []string{"personal", "work"}, dlg.listedItems)
	assert.Equal(t, "Bob", cfg.values["user.name"])
	assert.Equal(t, "bob@x.com", cfg.values["user.email"])

	require.Len(t, dlg.infoTexts, 1)
	assert.Contains(t, dlg.infoTexts[0], "<b>work</b>")
	assert.Contains(t, dlg.infoTexts[0], "Bob")
}
