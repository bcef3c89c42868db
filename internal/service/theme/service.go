package theme

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/BssMsi/everglow-ai-storefront/internal/model/theme"
)

// Manager owns the single active theme selection. Every change goes through
// one of the Apply methods; consumers observe the result via Active or the
// OnChange callback, never by writing fields themselves.
type Manager struct {
	mu       sync.Mutex
	active   theme.Selection
	rng      *rand.Rand
	onChange func(theme.Selection)
}

// Option customizes a Manager.
type Option func(*Manager)

// WithRandSource overrides the random source used for hint-less selection.
func WithRandSource(src rand.Source) Option {
	return func(m *Manager) {
		m.rng = rand.New(src)
	}
}

// WithOnChange registers a callback fired after every successful apply.
func WithOnChange(fn func(theme.Selection)) Option {
	return func(m *Manager) {
		m.onChange = fn
	}
}

// NewManager starts with the dark scheme and the inter font, matching the
// storefront's boot defaults.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		active: theme.Selection{Scheme: theme.SchemeDark, Font: theme.FontInter},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply activates the given scheme. Unknown identifiers are rejected at
// this boundary: a warning is logged and the active selection is left
// untouched. Applying the active scheme again is a no-op apart from the
// change notification. The font is retained.
func (m *Manager) Apply(schemeID string) {
	if _, ok := theme.LookupScheme(schemeID); !ok {
		log.Printf("[theme] ignoring unknown scheme %q, available: %v", schemeID, theme.SchemeIDs())
		return
	}

	m.mu.Lock()
	m.active.Scheme = schemeID
	selection := m.active
	m.mu.Unlock()

	log.Printf("[theme] scheme applied: %s", schemeID)
	m.notify(selection)
}

// ApplyRandom picks uniformly among all registered schemes. The active
// scheme is not excluded from the draw.
func (m *Manager) ApplyRandom() {
	ids := theme.SchemeIDs()

	m.mu.Lock()
	m.active.Scheme = ids[m.rng.Intn(len(ids))]
	selection := m.active
	m.mu.Unlock()

	log.Printf("[theme] scheme applied at random: %s", selection.Scheme)
	m.notify(selection)
}

// ApplyHint dispatches on the agent's optional theme hint: an empty hint
// means the agent expressed no preference and a random scheme is drawn.
func (m *Manager) ApplyHint(hint string) {
	if hint == "" {
		m.ApplyRandom()
		return
	}
	m.Apply(hint)
}

// SetFont activates the given font family, validated against the font
// registry the same way schemes are.
func (m *Manager) SetFont(fontID string) {
	if _, ok := theme.LookupFont(fontID); !ok {
		log.Printf("[theme] ignoring unknown font %q, available: %v", fontID, theme.FontIDs())
		return
	}

	m.mu.Lock()
	m.active.Font = fontID
	selection := m.active
	m.mu.Unlock()

	m.notify(selection)
}

// Active returns the current selection.
func (m *Manager) Active() theme.Selection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// ActivePalette returns the palette of the current scheme with the active
// font family substituted in.
func (m *Manager) ActivePalette() theme.Palette {
	m.mu.Lock()
	selection := m.active
	m.mu.Unlock()

	palette, _ := theme.LookupScheme(selection.Scheme)
	if family, ok := theme.LookupFont(selection.Font); ok {
		palette.FontFamily = family
	}
	return palette
}

func (m *Manager) notify(selection theme.Selection) {
	if m.onChange != nil {
		m.onChange(selection)
	}
}
