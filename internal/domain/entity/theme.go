package entity

import (
	"encoding/json"
	"strings"
)

// Theme is the panel color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// DefaultTheme is used when nothing has been persisted yet.
	DefaultTheme = ThemeLight
)

// Themes lists every supported theme in display order.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// ParseTheme converts a raw value into a known theme.
func ParseTheme(raw string) (Theme, bool) {
	t := Theme(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Themes() {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Valid returns true if t is a supported theme.
func (t Theme) Valid() bool {
	_, ok := ParseTheme(string(t))
	return ok
}

// Class returns the document root class applied for this theme, e.g. "dark-theme".
func (t Theme) Class() string {
	return string(t) + "-theme"
}

// DecodeStoredTheme reads a persisted theme value. Both a JSON string and a
// bare value are accepted. It returns false for empty or unknown values.
func DecodeStoredTheme(raw []byte) (Theme, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	return ParseTheme(s)
}
