package entity

// Storage keys.
const (
	// SitesKey holds the serialized SiteList in the synced store.
	SitesKey = "toolip_sites"
	// ThemeKey holds the serialized Theme in the synced store.
	ThemeKey = "toolip_theme"
	// CurrentURLKey holds the last opened URL in local panel state.
	CurrentURLKey = "currentUrl"
)

// StorageArea identifies which store emitted a change.
type StorageArea string

const (
	StorageAreaSync  StorageArea = "sync"
	StorageAreaLocal StorageArea = "local"
)

// StorageChange describes a value that changed under a key.
// OldValue is nil when the key did not exist before.
type StorageChange struct {
	Area     StorageArea
	Key      string
	OldValue []byte
	NewValue []byte
}
