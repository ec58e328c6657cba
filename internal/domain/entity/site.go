package entity

import "errors"

// ErrIndexOutOfRange is returned when a list position does not exist.
var ErrIndexOutOfRange = errors.New("site index out of range")

// SiteID uniquely identifies a registered site. Treat it as opaque.
type SiteID string

// Site is a destination shown in the panel navigation.
type Site struct {
	ID       SiteID `json:"id" jsonschema:"description=Stable opaque identifier"`
	URL      string `json:"url" jsonschema:"required,format=uri"`
	Title    string `json:"title" jsonschema:"required,minLength=1"`
	Icon     string `json:"icon,omitempty" jsonschema:"description=Icon URL or data URL; auto-detected when empty"`
	Category string `json:"category,omitempty"`
}

// HasIcon returns true if the site carries an explicit icon.
func (s Site) HasIcon() bool {
	return s.Icon != ""
}

// SiteList is an ordered list of sites. Order drives navigation order.
type SiteList []Site

// Clone returns a copy that shares no backing array with l.
func (l SiteList) Clone() SiteList {
	if l == nil {
		return nil
	}
	out := make(SiteList, len(l))
	copy(out, l)
	return out
}

// IndexOfURL returns the position of the first site with the given URL, or -1.
func (l SiteList) IndexOfURL(url string) int {
	for i, s := range l {
		if s.URL == url {
			return i
		}
	}
	return -1
}

// ContainsURL reports whether any site uses url.
func (l SiteList) ContainsURL(url string) bool {
	return l.IndexOfURL(url) >= 0
}

// First returns the first site, if any.
func (l SiteList) First() (Site, bool) {
	if len(l) == 0 {
		return Site{}, false
	}
	return l[0], true
}

// Append returns a new list with s added at the end.
func (l SiteList) Append(s Site) SiteList {
	out := make(SiteList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, s)
}

// Replace returns a new list where position i holds s.
// The original id at i is kept so identity survives edits.
func (l SiteList) Replace(i int, s Site) (SiteList, error) {
	if i < 0 || i >= len(l) {
		return nil, ErrIndexOutOfRange
	}
	out := l.Clone()
	s.ID = l[i].ID
	out[i] = s
	return out, nil
}

// Remove returns a new list without the site at position i.
func (l SiteList) Remove(i int) (SiteList, error) {
	if i < 0 || i >= len(l) {
		return nil, ErrIndexOutOfRange
	}
	out := make(SiteList, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...), nil
}

// Move returns a new list where the site at from has been relocated to to,
// shifting the entries in between.
func (l SiteList) Move(from, to int) (SiteList, error) {
	if from < 0 || from >= len(l) || to < 0 || to >= len(l) {
		return nil, ErrIndexOutOfRange
	}
	if from == to {
		return l.Clone(), nil
	}
	moved := l[from]
	rest, _ := l.Remove(from)

	out := make(SiteList, 0, len(l))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	return append(out, rest[to:]...), nil
}
