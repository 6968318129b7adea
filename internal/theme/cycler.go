package theme

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

const (
	Light  = "light"
	Dark   = "dark"
	System = "system"
)

// DefaultThemes is the candidate list used when none is configured.
var DefaultThemes = []string{Light, Dark, System}

// Cycler holds the current theme of one UI instance. It is not shared across
// instances and does no locking.
type Cycler struct {
	themes  []string
	initial string
	index   int
	mounted bool
	store   Store
	system  func() string
	log     *logger.Logger
}

// Option configures a Cycler.
type Option func(*Cycler)

// WithThemes replaces the candidate theme list.
func WithThemes(themes ...string) Option {
	return func(c *Cycler) {
		c.themes = append([]string(nil), themes...)
	}
}

// WithInitial selects the starting theme used when the store holds none.
func WithInitial(name string) Option {
	return func(c *Cycler) {
		c.initial = name
	}
}

// WithStore persists every theme change through store and restores the
// stored theme at construction.
func WithStore(store Store) Option {
	return func(c *Cycler) {
		c.store = store
	}
}

// WithSystemResolver overrides how the "system" theme is resolved to a
// concrete theme.
func WithSystemResolver(resolve func() string) Option {
	return func(c *Cycler) {
		c.system = resolve
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Cycler) {
		c.log = log
	}
}

// NewCycler builds a Cycler positioned at the stored theme, or at the initial
// theme (first candidate by default) when nothing usable is stored.
func NewCycler(opts ...Option) (*Cycler, error) {
	c := &Cycler{
		themes: append([]string(nil), DefaultThemes...),
		system: detectSystemTheme,
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(c.themes) == 0 {
		return nil, fmt.Errorf("theme list is empty")
	}
	for i, name := range c.themes {
		if name == "" {
			return nil, fmt.Errorf("theme %d has an empty name", i)
		}
		if slices.Index(c.themes, name) != i {
			return nil, fmt.Errorf("theme %q listed more than once", name)
		}
	}

	if c.initial != "" {
		idx := slices.Index(c.themes, c.initial)
		if idx < 0 {
			return nil, fmt.Errorf("initial theme %q is not one of %v", c.initial, c.themes)
		}
		c.index = idx
	}

	if c.store == nil {
		return c, nil
	}

	stored, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	if stored == "" {
		return c, nil
	}
	if idx := slices.Index(c.themes, stored); idx >= 0 {
		c.index = idx
	} else {
		c.log.Warn(fmt.Sprintf("stored theme %q is not a candidate, using %q", stored, c.Current()))
	}
	return c, nil
}

// Current returns the selected theme name.
func (c *Cycler) Current() string {
	return c.themes[c.index]
}

// Themes returns the candidate list.
func (c *Cycler) Themes() []string {
	return append([]string(nil), c.themes...)
}

// Cycle advances to the next candidate, wrapping around, and persists it.
// The new theme is kept even when persisting fails.
func (c *Cycler) Cycle() (string, error) {
	c.index = (c.index + 1) % len(c.themes)
	return c.Current(), c.persist()
}

// Set selects name, which must be one of the candidates.
func (c *Cycler) Set(name string) error {
	idx := slices.Index(c.themes, name)
	if idx < 0 {
		return fmt.Errorf("unknown theme %q (available: %v)", name, c.themes)
	}
	c.index = idx
	return c.persist()
}

// Mount marks the instance as rendered. It reports true only for the call
// that flipped the flag.
func (c *Cycler) Mount() bool {
	if c.mounted {
		return false
	}
	c.mounted = true
	return true
}

// Mounted reports whether Mount has been called.
func (c *Cycler) Mounted() bool {
	return c.mounted
}

// Resolved returns the concrete theme, mapping "system" through the system
// resolver.
func (c *Cycler) Resolved() string {
	current := c.Current()
	if current == System && c.system != nil {
		return c.system()
	}
	return current
}

// Display returns the resolved theme once mounted and "" before, so nothing
// is shown until the real theme is known.
func (c *Cycler) Display() string {
	if !c.mounted {
		return ""
	}
	return c.Resolved()
}

func (c *Cycler) persist() error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(c.Current()); err != nil {
		c.log.Error(err, "persist theme")
		return fmt.Errorf("save theme: %w", err)
	}
	c.log.Debugf("theme set to %s", c.Current())
	return nil
}

func detectSystemTheme() string {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}
