package theme

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ loadErr, saveErr error }

func (s failingStore) Load() (string, error) { return "", s.loadErr }
func (s failingStore) Save(string) error     { return s.saveErr }

func TestCycleAdvancesAndWraps(t *testing.T) {
	t.Parallel()

	c, err := NewCycler()
	require.NoError(t, err)
	require.Equal(t, Light, c.Current())

	next, err := c.Cycle()
	require.NoError(t, err)
	assert.Equal(t, Dark, next)

	_, _ = c.Cycle()
	last, _ := c.Cycle()
	assert.Equal(t, Light, last)
}

func TestCustomThemeList(t *testing.T) {
	t.Parallel()

	c, err := NewCycler(WithThemes("paper", "ink"))
	require.NoError(t, err)

	assert.Equal(t, []string{"paper", "ink"}, c.Themes())
	next, _ := c.Cycle()
	assert.Equal(t, "ink", next)
	next, _ = c.Cycle()
	assert.Equal(t, "paper", next)
}

func TestNewCyclerRejectsBadLists(t *testing.T) {
	t.Parallel()

	_, err := NewCycler(WithThemes())
	require.Error(t, err)

	_, err = NewCycler(WithThemes("a", "b", "a"))
	require.ErrorContains(t, err, `"a" listed more than once`)

	_, err = NewCycler(WithThemes("a", ""))
	require.Error(t, err)
}

func TestMountFlipsExactlyOnce(t *testing.T) {
	t.Parallel()

	c, err := NewCycler(WithSystemResolver(func() string { return Dark }))
	require.NoError(t, err)
	require.NoError(t, c.Set(System))

	assert.False(t, c.Mounted())
	assert.Equal(t, "", c.Display())

	assert.True(t, c.Mount())
	assert.False(t, c.Mount())
	assert.True(t, c.Mounted())
	assert.Equal(t, Dark, c.Display())
	assert.Equal(t, System, c.Current())
}

func TestSetUnknownTheme(t *testing.T) {
	t.Parallel()

	c, err := NewCycler()
	require.NoError(t, err)
	require.ErrorContains(t, c.Set("sepia"), "unknown theme")
	assert.Equal(t, Light, c.Current())
}

func TestCyclerRestoresAndPersistsThroughStore(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(Dark)
	c, err := NewCycler(WithStore(store))
	require.NoError(t, err)
	assert.Equal(t, Dark, c.Current())

	_, err = c.Cycle()
	require.NoError(t, err)
	saved, _ := store.Load()
	assert.Equal(t, System, saved)
}

func TestCyclerIgnoresUnknownStoredTheme(t *testing.T) {
	t.Parallel()

	c, err := NewCycler(WithStore(NewMemoryStore("sepia")))
	require.NoError(t, err)
	assert.Equal(t, Light, c.Current())
}

func TestCyclerStoreFailures(t *testing.T) {
	t.Parallel()

	_, err := NewCycler(WithStore(failingStore{loadErr: errors.New("disk gone")}))
	require.ErrorContains(t, err, "disk gone")

	c, err := NewCycler(WithStore(failingStore{saveErr: errors.New("read-only")}))
	require.NoError(t, err)
	next, err := c.Cycle()
	require.ErrorContains(t, err, "read-only")
	assert.Equal(t, Dark, next)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "theme.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	theme, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "", theme)

	c, err := NewCycler(WithStore(store))
	require.NoError(t, err)
	require.NoError(t, c.Set(System))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	restored, err := NewCycler(WithStore(reopened))
	require.NoError(t, err)
	assert.Equal(t, System, restored.Current())
	assert.NoFileExists(t, path+".tmp")
}

func TestInitialThemeYieldsToStoredTheme(t *testing.T) {
	t.Parallel()

	c, err := NewCycler(WithInitial(System))
	require.NoError(t, err)
	assert.Equal(t, System, c.Current())

	c, err = NewCycler(WithInitial(System), WithStore(NewMemoryStore(Dark)))
	require.NoError(t, err)
	assert.Equal(t, Dark, c.Current())

	_, err = NewCycler(WithInitial("sepia"))
	require.ErrorContains(t, err, `initial theme "sepia"`)
}
