package theme

// Palette holds the named visual variables a scheme controls. Values are
// CSS custom-property colors consumed by the view layer.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Text       string `json:"text"`
	Background string `json:"background"`
	AccentDark string `json:"accentDark"`
	Foreground string `json:"foreground"`
	Muted      string `json:"muted"`
	Logo       string `json:"logo"`
	FontFamily string `json:"fontFamily"`
}

// Selection is the single process-wide theme choice: one color scheme plus
// one font family, both drawn from the closed registries below.
type Selection struct {
	Scheme string `json:"scheme"`
	Font   string `json:"font"`
}

// Registered scheme identifiers. The set is closed; adding a scheme means
// extending this file, not runtime data.
const (
	SchemeDefault  = "default"
	SchemeDark     = "dark"
	SchemeRose     = "rose"
	SchemeTeal     = "teal"
	SchemeLavender = "lavender"
)

// Registered font identifiers.
const (
	FontInter  = "inter"
	FontRoboto = "roboto"
	FontLato   = "lato"
)

var schemes = map[string]Palette{
	SchemeDefault: {
		Primary:    "#EC4899",
		Secondary:  "#D1D5DB",
		Text:       "#1F2937",
		Background: "#FFFFFF",
		AccentDark: "#9CA3AF",
		Foreground: "#1F2937",
		Muted:      "#F3F4F6",
		Logo:       "#EC4899",
		FontFamily: "'Inter', sans-serif",
	},
	SchemeDark: {
		Primary:    "#3B82F6",
		Secondary:  "#1E293B",
		Text:       "#FFFFFF",
		Background: "#0F172A",
		AccentDark: "#334155",
		Foreground: "#F8FAFC",
		Muted:      "#475569",
		Logo:       "#3B82F6",
		FontFamily: "'Inter', sans-serif",
	},
	SchemeRose: {
		Primary:    "#F43F5E",
		Secondary:  "#FECDD3",
		Text:       "#881337",
		Background: "#FFF1F2",
		AccentDark: "#FB7185",
		Foreground: "#881337",
		Muted:      "#FDF2F8",
		Logo:       "#F43F5E",
		FontFamily: "'Inter', sans-serif",
	},
	SchemeTeal: {
		Primary:    "#14B8A6",
		Secondary:  "#99F6E4",
		Text:       "#0F766E",
		Background: "#F0FDFA",
		AccentDark: "#5EEAD4",
		Foreground: "#0F766E",
		Muted:      "#CCFBF1",
		Logo:       "#14B8A6",
		FontFamily: "'Inter', sans-serif",
	},
	SchemeLavender: {
		Primary:    "#8B5CF6",
		Secondary:  "#DDD6FE",
		Text:       "#5B21B6",
		Background: "#F5F3FF",
		AccentDark: "#C4B5FD",
		Foreground: "#5B21B6",
		Muted:      "#EDE9FE",
		Logo:       "#8B5CF6",
		FontFamily: "'Inter', sans-serif",
	},
}

// schemeOrder keeps SchemeIDs deterministic for random selection and tests.
var schemeOrder = []string{
	SchemeDefault,
	SchemeDark,
	SchemeRose,
	SchemeTeal,
	SchemeLavender,
}

var fonts = map[string]string{
	FontInter:  "'Inter', sans-serif",
	FontRoboto: "'Roboto', sans-serif",
	FontLato:   "'Lato', sans-serif",
}

var fontOrder = []string{FontInter, FontRoboto, FontLato}

// LookupScheme returns the palette for a scheme identifier.
func LookupScheme(id string) (Palette, bool) {
	p, ok := schemes[id]
	return p, ok
}

// LookupFont returns the CSS font-family string for a font identifier.
func LookupFont(id string) (string, bool) {
	f, ok := fonts[id]
	return f, ok
}

// SchemeIDs lists every registered scheme identifier.
func SchemeIDs() []string {
	return append([]string(nil), schemeOrder...)
}

// FontIDs lists every registered font identifier.
func FontIDs() []string {
	return append([]string(nil), fontOrder...)
}
