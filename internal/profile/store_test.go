package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	return NewStore(filepath.Join(dir, "git-profiles"), filepath.Join(dir, ".gitconfig-active"))
}

func TestSerializeFixedLayout(t *testing.T) {
	p := Profile{Name: "Bob", Email: "bob@x.com", Editor: "vim"}

	want := "[user]\n\tname = Bob\n\temail = bob@x.com\n[core]\n\teditor = vim\n"
	assert.Equal(t, want, Serialize(p))
}

func TestSerializeOmitsEmptySections(t *testing.T) {
	assert.Equal(t, "[user]\n\tname = Bob\n", Serialize(Profile{Name: "Bob"}))
	assert.Equal(t, "[core]\n\teditor = vim\n", Serialize(Profile{Editor: "vim"}))
	assert.Equal(t, "", Serialize(Profile{}))
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	p := Profile{Name: "Bob", Email: "bob@x.com", Editor: "vim"}
	require.NoError(t, store.Write("work", p, false))

	got, err := store.Read("work")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	raw, err := store.ReadRaw("work")
	require.NoError(t, err)
	assert.Equal(t, Serialize(p), string(raw))
}

func TestReadToleratesMissingSections(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureDir())

	require.NoError(t, os.WriteFile(store.Path("partial"), []byte("[user]\n\tname = Alice\n"), 0600))

	got, err := store.Read("partial")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Empty(t, got.Email)
	assert.Empty(t, got.Editor)
}

func TestReadNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Read("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = store.ReadRaw("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWriteExisting(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write("work", Profile{Name: "First"}, false))

	err := store.Write("work", Profile{Name: "Second"}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	// Overwrite only when explicitly requested.
	require.NoError(t, store.Write("work", Profile{Name: "Second"}, true))
	got, err := store.Read("work")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Name)
}

func TestListEmptyStore(t *testing.T) {
	store := newTestStore(t)

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	// List creates the directory on the way.
	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestListSortedAndFiltered(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureDir())

	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, store.Write(name, Profile{Name: name}, false))
	}
	// Non-profile entries are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(store.Dir(), "sub.gitconfig"), 0700))

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestSnapshotAndGuessActive(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write("personal", Profile{Name: "Alice", Email: "alice@home.org"}, false))
	require.NoError(t, store.Write("work", Profile{Name: "Bob", Email: "bob@x.com"}, false))

	require.NoError(t, store.Snapshot("work"))

	name, err := store.GuessActive()
	require.NoError(t, err)
	assert.Equal(t, "work", name)
}

func TestGuessActiveNoSnapshot(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Write("work", Profile{Name: "Bob"}, false))

	name, err := store.GuessActive()
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestGuessActiveStaleSnapshot(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write("work", Profile{Name: "Bob"}, false))
	require.NoError(t, store.Snapshot("work"))

	// Profile edited after activation; the snapshot no longer matches.
	require.NoError(t, store.Write("work", Profile{Name: "Robert"}, true))

	name, err := store.GuessActive()
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestGuessActivePrefersSortedOrder(t *testing.T) {
	store := newTestStore(t)

	// Two byte-identical profiles; the first in sorted order wins.
	p := Profile{Name: "Bob", Email: "bob@x.com"}
	require.NoError(t, store.Write("zeta", p, false))
	require.NoError(t, store.Write("alpha", p, false))
	require.NoError(t, store.Snapshot("zeta"))

	name, err := store.GuessActive()
	require.NoError(t, err)
	assert.Equal(t, "alpha", name)
}

func TestSnapshotMissingProfile(t *testing.T) {
	store := newTestStore(t)

	assert.Error(t, store.Snapshot("missing"))
}
