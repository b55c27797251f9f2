package main

import (
	"embed"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

//go:embed themes/*.toml
var themeFS embed.FS

// Theme maps tokenizer style names and UI element names to terminal styles.
type Theme struct {
	Name   string
	styles map[string]tcell.Style
	base   tcell.Style
}

// Style resolves a style name, falling back to the base text style.
func (t *Theme) Style(name string) tcell.Style {
	if s, ok := t.styles[name]; ok {
		return s
	}
	return t.base
}

// Base returns the default text style.
func (t *Theme) Base() tcell.Style { return t.base }

// Names lists the styles the theme defines, sorted.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// themeFile is the TOML authoring form of a theme. Every entry under
// [styles] layers its set attributes over the "plain" style.
type themeFile struct {
	Styles map[string]styleSpec `toml:"styles"`
}

type styleSpec struct {
	FG        string `toml:"fg"`
	BG        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
	Reverse   bool   `toml:"reverse"`
}

// style layers the set attributes on top of a base style. Colors accept
// tcell names ("red") and hex ("#61afef").
func (s styleSpec) style(base tcell.Style) tcell.Style {
	st := base
	if s.FG != "" {
		st = st.Foreground(tcell.GetColor(s.FG))
	}
	if s.BG != "" {
		st = st.Background(tcell.GetColor(s.BG))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}

// loadTheme reads a named TOML theme from the embedded themes directory,
// falling back to the built-in default when the name is unknown or the file
// is malformed.
func loadTheme(name string) *Theme {
	data, err := themeFS.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return defaultTheme()
	}
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return defaultTheme()
	}

	base := tf.Styles["plain"].style(tcell.StyleDefault)
	t := &Theme{Name: name, base: base, styles: make(map[string]tcell.Style, len(tf.Styles))}
	for styleName, spec := range tf.Styles {
		t.styles[styleName] = spec.style(base)
	}
	return t
}

// defaultTheme is the minimal terminal-colors fallback used when no theme
// file can be loaded.
func defaultTheme() *Theme {
	base := tcell.StyleDefault
	return &Theme{
		Name: "default",
		base: base,
		styles: map[string]tcell.Style{
			"plain":            base,
			"keyword":          base.Foreground(tcell.ColorBlue).Bold(true),
			"string":           base.Foreground(tcell.ColorGreen),
			"comment":          base.Foreground(tcell.ColorGray).Italic(true),
			"number":           base.Foreground(tcell.ColorOlive),
			"constant":         base.Foreground(tcell.ColorOlive),
			"type":             base.Foreground(tcell.ColorTeal),
			"function":         base.Foreground(tcell.ColorYellow),
			"operator":         base,
			"punctuation":      base.Foreground(tcell.ColorGray),
			"selection":        base.Reverse(true),
			"match":            base.Background(tcell.ColorOlive).Foreground(tcell.ColorBlack),
			"bracket":          base.Bold(true).Underline(true),
			"secondaryCursor":  base.Reverse(true).Underline(true),
			"indentGuide":      base.Foreground(tcell.ColorGray),
			"lineNumber":       base.Foreground(tcell.ColorGray),
			"lineNumberActive": base.Bold(true),
			"statusBar":        base.Reverse(true),
			"statusBarDirty":   base.Reverse(true).Bold(true),
			"tabBar":           base.Reverse(true),
			"tabActive":        base.Bold(true),
		},
	}
}
