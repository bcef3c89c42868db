package theme

import (
	"math/rand"
	"testing"

	themeModel "github.com/BssMsi/everglow-ai-storefront/internal/model/theme"
)

func TestApplyKnownScheme(t *testing.T) {
	m := NewManager()

	m.Apply(themeModel.SchemeRose)

	active := m.Active()
	if active.Scheme != themeModel.SchemeRose {
		t.Fatalf("expected rose, got %s", active.Scheme)
	}
	if active.Font != themeModel.FontInter {
		t.Fatalf("font must be retained, got %s", active.Font)
	}
}

func TestApplyUnknownSchemeLeavesSelectionUnchanged(t *testing.T) {
	m := NewManager()
	before := m.Active()

	m.Apply("unknown-id")

	if m.Active() != before {
		t.Fatalf("selection changed after unknown scheme: %+v", m.Active())
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	m := NewManager()

	m.Apply(themeModel.SchemeTeal)
	first := m.Active()
	m.Apply(themeModel.SchemeTeal)

	if m.Active() != first {
		t.Fatalf("second apply changed state: %+v", m.Active())
	}
}

func TestApplyRandomStaysWithinRegistry(t *testing.T) {
	m := NewManager(WithRandSource(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		m.ApplyRandom()
		if _, ok := themeModel.LookupScheme(m.Active().Scheme); !ok {
			t.Fatalf("random pick left the registry: %s", m.Active().Scheme)
		}
	}
}

func TestApplyHintDispatch(t *testing.T) {
	var changes []themeModel.Selection
	m := NewManager(
		WithRandSource(rand.NewSource(1)),
		WithOnChange(func(sel themeModel.Selection) {
			changes = append(changes, sel)
		}),
	)

	m.ApplyHint(themeModel.SchemeLavender)
	if m.Active().Scheme != themeModel.SchemeLavender {
		t.Fatalf("explicit hint not applied: %s", m.Active().Scheme)
	}

	m.ApplyHint("")
	if _, ok := themeModel.LookupScheme(m.Active().Scheme); !ok {
		t.Fatalf("empty hint produced unregistered scheme: %s", m.Active().Scheme)
	}

	if len(changes) != 2 {
		t.Fatalf("expected 2 change notifications, got %d", len(changes))
	}
}

func TestSetFontValidated(t *testing.T) {
	m := NewManager()

	m.SetFont(themeModel.FontLato)
	if m.Active().Font != themeModel.FontLato {
		t.Fatalf("expected lato, got %s", m.Active().Font)
	}

	m.SetFont("comic-sans")
	if m.Active().Font != themeModel.FontLato {
		t.Fatalf("unknown font must be rejected, got %s", m.Active().Font)
	}
}

func TestActivePaletteUsesSelectedFont(t *testing.T) {
	m := NewManager()
	m.Apply(themeModel.SchemeDefault)
	m.SetFont(themeModel.FontRoboto)

	palette := m.ActivePalette()
	if palette.FontFamily != "'Roboto', sans-serif" {
		t.Fatalf("unexpected font family: %s", palette.FontFamily)
	}
	if palette.Primary != "#EC4899" {
		t.Fatalf("unexpected primary color: %s", palette.Primary)
	}
}
