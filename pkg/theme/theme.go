// Package theme defines the color palette applied to the whole interface.
//
// A Theme is a plain value; the application swaps it wholesale rather than
// mutating individual entries, so views can hold on to styles for the
// duration of one draw without seeing a half-updated palette.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/weftui/weft/pkg/ui"
)

// Theme assigns a style to each role in the interface.
type Theme struct {
	// Style of plain view content.
	View ui.Style
	// Style of the shadow under layered views.
	Shadow ui.Style
	// Primary, Secondary and Tertiary text styles.
	Primary   ui.Style
	Secondary ui.Style
	Tertiary  ui.Style
	// Style of view titles.
	TitlePrimary ui.Style
	// Style of the focused element.
	Highlight ui.Style
	// Style of a selected but unfocused element.
	HighlightInactive ui.Style
}

// Default returns the default theme, modeled on how classic full-screen
// terminal applications look.
func Default() Theme {
	return Theme{
		View:              ui.Style{Foreground: ui.Black, Background: ui.White},
		Shadow:            ui.Style{Background: ui.Black},
		Primary:           ui.Style{Foreground: ui.Black, Background: ui.White},
		Secondary:         ui.Style{Foreground: ui.Blue, Background: ui.White},
		Tertiary:          ui.Style{Foreground: ui.White, Background: ui.White},
		TitlePrimary:      ui.Style{Foreground: ui.Red, Background: ui.White},
		Highlight:         ui.Style{Foreground: ui.White, Background: ui.Red},
		HighlightInactive: ui.Style{Foreground: ui.White, Background: ui.Blue},
	}
}

// ParseError is returned when theme text cannot be parsed. It distinguishes
// malformed input from I/O errors, so that callers can decide to keep their
// current theme.
type ParseError struct {
	Role string
	Err  error
}

func (e ParseError) Error() string {
	if e.Role == "" {
		return "parse theme: " + e.Err.Error()
	}
	return fmt.Sprintf("parse theme: role %s: %v", e.Role, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// The YAML shape of one style entry.
type styleSpec struct {
	Fg         string `yaml:"fg"`
	Bg         string `yaml:"bg"`
	Bold       bool   `yaml:"bold"`
	Dim        bool   `yaml:"dim"`
	Italic     bool   `yaml:"italic"`
	Underlined bool   `yaml:"underlined"`
	Blink      bool   `yaml:"blink"`
	Inverse    bool   `yaml:"inverse"`
}

type themeSpec struct {
	View              *styleSpec `yaml:"view"`
	Shadow            *styleSpec `yaml:"shadow"`
	Primary           *styleSpec `yaml:"primary"`
	Secondary         *styleSpec `yaml:"secondary"`
	Tertiary          *styleSpec `yaml:"tertiary"`
	TitlePrimary      *styleSpec `yaml:"title-primary"`
	Highlight         *styleSpec `yaml:"highlight"`
	HighlightInactive *styleSpec `yaml:"highlight-inactive"`
}

// FromString parses a theme from YAML text. Roles not mentioned in the text
// keep their value from the default theme. On error the returned theme is
// the default theme.
func FromString(text string) (Theme, error) {
	t := Default()
	var spec themeSpec
	if err := yaml.Unmarshal([]byte(text), &spec); err != nil {
		return Default(), ParseError{Err: err}
	}
	for _, role := range []struct {
		name string
		spec *styleSpec
		dst  *ui.Style
	}{
		{"view", spec.View, &t.View},
		{"shadow", spec.Shadow, &t.Shadow},
		{"primary", spec.Primary, &t.Primary},
		{"secondary", spec.Secondary, &t.Secondary},
		{"tertiary", spec.Tertiary, &t.Tertiary},
		{"title-primary", spec.TitlePrimary, &t.TitlePrimary},
		{"highlight", spec.Highlight, &t.Highlight},
		{"highlight-inactive", spec.HighlightInactive, &t.HighlightInactive},
	} {
		if role.spec == nil {
			continue
		}
		st, err := role.spec.style()
		if err != nil {
			return Default(), ParseError{Role: role.name, Err: err}
		}
		*role.dst = st
	}
	return t, nil
}

// FromFile loads a theme from a YAML file.
func FromFile(name string) (Theme, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return Default(), fmt.Errorf("load theme: %w", err)
	}
	return FromString(string(content))
}

func (s *styleSpec) style() (ui.Style, error) {
	st := ui.Style{
		Bold: s.Bold, Dim: s.Dim, Italic: s.Italic,
		Underlined: s.Underlined, Blink: s.Blink, Inverse: s.Inverse,
	}
	if s.Fg != "" {
		c := ui.ParseColor(s.Fg)
		if c == nil {
			return ui.Style{}, fmt.Errorf("unknown color %q", s.Fg)
		}
		st.Foreground = c
	}
	if s.Bg != "" {
		c := ui.ParseColor(s.Bg)
		if c == nil {
			return ui.Style{}, fmt.Errorf("unknown color %q", s.Bg)
		}
		st.Background = c
	}
	return st, nil
}
