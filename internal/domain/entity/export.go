package entity

import "time"

// ExportVersion is written into every settings export.
const ExportVersion = "1.1.0"

// ExportEnvelope is the settings file format.
// Only Sites is required on import; the other fields are informational.
type ExportEnvelope struct {
	Version   string    `json:"version" jsonschema:"example=1.1.0"`
	Timestamp time.Time `json:"timestamp"`
	Sites     SiteList  `json:"sites" jsonschema:"required"`
}

// NewExportEnvelope wraps sites for export at the given time.
func NewExportEnvelope(sites SiteList, at time.Time) ExportEnvelope {
	if sites == nil {
		sites = SiteList{}
	}
	return ExportEnvelope{
		Version:   ExportVersion,
		Timestamp: at.UTC(),
		Sites:     sites,
	}
}
