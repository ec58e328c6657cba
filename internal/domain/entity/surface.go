package entity

import "strings"

// SurfacePermissions is the feature set requested by every embedded surface.
var SurfacePermissions = []string{"camera", "clipboard-write", "fullscreen", "microphone", "geolocation"}

// SurfaceSpec describes how an embedded surface must be created.
type SurfaceSpec struct {
	URL           string
	Permissions   []string
	FillContainer bool
}

// NewSurfaceSpec returns the standard spec for url.
func NewSurfaceSpec(url string) SurfaceSpec {
	perms := make([]string, len(SurfacePermissions))
	copy(perms, SurfacePermissions)
	return SurfaceSpec{
		URL:           url,
		Permissions:   perms,
		FillContainer: true,
	}
}

// AllowAttribute renders the permission set as a frame "allow" attribute.
func (s SurfaceSpec) AllowAttribute() string {
	return strings.Join(s.Permissions, "; ")
}

// NavItem is one entry of the panel navigation.
type NavItem struct {
	SiteID SiteID
	URL    string
	Title  string
	Icon   string
	Active bool
}
