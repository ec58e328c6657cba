// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/domain/repository"
	domainurl "github.com/bnema/toolip/internal/domain/url"
	"github.com/bnema/toolip/internal/logging"
)

const idSuffixLen = 9

// SiteRegistryOptions configures a SiteRegistry.
type SiteRegistryOptions struct {
	DefaultList entity.DefaultListName
	IconStyle   domainurl.IconStyle
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// SiteRegistry owns the persisted site list and theme.
// Every storage failure is logged and converted to a default value or false;
// nothing is returned to callers as an error.
type SiteRegistry struct {
	repo        repository.SettingsRepository
	defaultList entity.DefaultListName
	icons       domainurl.IconStyle
	now         func() time.Time

	lastIDMillis atomic.Int64
}

// NewSiteRegistry creates a registry backed by repo.
func NewSiteRegistry(repo repository.SettingsRepository, opts SiteRegistryOptions) *SiteRegistry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.IconStyle.Template == "" {
		opts.IconStyle = domainurl.DefaultIconStyle()
	}
	if opts.DefaultList == "" {
		opts.DefaultList = entity.DefaultListStandard
	}
	return &SiteRegistry{
		repo:        repo,
		defaultList: opts.DefaultList,
		icons:       opts.IconStyle,
		now:         opts.Now,
	}
}

// DefaultSites returns the configured built-in list.
func (r *SiteRegistry) DefaultSites() entity.SiteList {
	return entity.DefaultSites(r.defaultList)
}

// GetSites returns the persisted list, or the default list when nothing
// usable is stored. The fallback is never written back.
// Sites without an icon get the automatic one in the returned copy.
func (r *SiteRegistry) GetSites(ctx context.Context) entity.SiteList {
	sites, _ := r.loadSites(ctx)
	return r.withIcons(sites)
}

// StoredSites returns the list as stored, or the default list, without
// automatic icons. Editors work on this copy so that saving never persists
// a computed icon.
func (r *SiteRegistry) StoredSites(ctx context.Context) entity.SiteList {
	sites, _ := r.loadSites(ctx)
	return sites.Clone()
}

// loadSites returns the raw stored list and whether it came from storage.
func (r *SiteRegistry) loadSites(ctx context.Context) (entity.SiteList, bool) {
	log := logging.FromContext(ctx)

	raw, err := r.repo.Get(ctx, entity.SitesKey)
	if err != nil {
		log.Error().Err(err).Msg("failed to load sites, using defaults")
		return r.DefaultSites(), false
	}
	if len(raw) == 0 {
		log.Debug().Msg("no stored sites, using defaults")
		return r.DefaultSites(), false
	}

	var sites entity.SiteList
	if err := json.Unmarshal(raw, &sites); err != nil {
		log.Error().Err(err).Msg("failed to decode stored sites, using defaults")
		return r.DefaultSites(), false
	}
	if len(sites) == 0 {
		return r.DefaultSites(), false
	}

	log.Debug().Int("count", len(sites)).Msg("loaded sites")
	return sites, true
}

func (r *SiteRegistry) withIcons(sites entity.SiteList) entity.SiteList {
	out := sites.Clone()
	for i := range out {
		if !out[i].HasIcon() {
			out[i].Icon = r.icons.AutoIcon(out[i].URL)
		}
	}
	return out
}

// SaveSites replaces the persisted list with a single write.
func (r *SiteRegistry) SaveSites(ctx context.Context, sites entity.SiteList) bool {
	log := logging.FromContext(ctx)

	if sites == nil {
		sites = entity.SiteList{}
	}
	raw, err := json.Marshal(sites)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode sites")
		return false
	}
	if err := r.repo.Set(ctx, entity.SitesKey, raw); err != nil {
		log.Error().Err(err).Msg("failed to save sites")
		return false
	}

	log.Info().Int("count", len(sites)).Msg("sites saved")
	return true
}

// ResetToDefault persists and returns the default list.
func (r *SiteRegistry) ResetToDefault(ctx context.Context) entity.SiteList {
	defaults := r.DefaultSites()
	if !r.SaveSites(ctx, defaults) {
		logging.FromContext(ctx).Warn().Msg("defaults could not be persisted")
	}
	return r.withIcons(defaults)
}

// GenerateID returns a new opaque site id: site_<unix-ms>_<random>.
// The time part strictly increases within the process.
func (r *SiteRegistry) GenerateID() entity.SiteID {
	return entity.SiteID(fmt.Sprintf("site_%d_%s", r.nextMillis(), randomSuffix()))
}

func (r *SiteRegistry) nextMillis() int64 {
	for {
		last := r.lastIDMillis.Load()
		now := r.now().UnixMilli()
		if now <= last {
			now = last + 1
		}
		if r.lastIDMillis.CompareAndSwap(last, now) {
			return now
		}
	}
}

func randomSuffix() string {
	id := uuid.New()
	s := strconv.FormatUint(binary.BigEndian.Uint64(id[8:]), 36)
	if len(s) < idSuffixLen {
		s = strings.Repeat("0", idSuffixLen-len(s)) + s
	}
	return s[len(s)-idSuffixLen:]
}

// AutoIcon returns the automatic icon for url. It never fails.
func (r *SiteRegistry) AutoIcon(url string) string {
	return r.icons.AutoIcon(url)
}

// GetTheme returns the persisted theme, or the default theme.
func (r *SiteRegistry) GetTheme(ctx context.Context) entity.Theme {
	log := logging.FromContext(ctx)

	raw, err := r.repo.Get(ctx, entity.ThemeKey)
	if err != nil {
		log.Error().Err(err).Msg("failed to load theme")
		return entity.DefaultTheme
	}
	if theme, ok := entity.DecodeStoredTheme(raw); ok {
		return theme
	}
	return entity.DefaultTheme
}

// SaveTheme persists theme. Unknown themes are rejected without a write.
func (r *SiteRegistry) SaveTheme(ctx context.Context, theme entity.Theme) bool {
	log := logging.FromContext(ctx)

	if !theme.Valid() {
		log.Warn().Str("theme", string(theme)).Msg("refusing to save unknown theme")
		return false
	}
	raw, err := json.Marshal(string(theme))
	if err != nil {
		log.Error().Err(err).Msg("failed to encode theme")
		return false
	}
	if err := r.repo.Set(ctx, entity.ThemeKey, raw); err != nil {
		log.Error().Err(err).Str("theme", string(theme)).Msg("failed to save theme")
		return false
	}

	log.Info().Str("theme", string(theme)).Msg("theme saved")
	return true
}

// Export wraps the current list in a versioned envelope.
// The list is exported as stored, without computed icons.
func (r *SiteRegistry) Export(ctx context.Context) entity.ExportEnvelope {
	sites, _ := r.loadSites(ctx)
	return entity.NewExportEnvelope(sites, r.now())
}

// ExportJSON returns the export envelope as indented JSON.
func (r *SiteRegistry) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := json.MarshalIndent(r.Export(ctx), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// ImportSites replaces the persisted list with the payload's sites.
// It succeeds only for a JSON object whose "sites" field is an array of site
// records; anything else returns false and leaves storage untouched.
// Records without an id, or repeating an earlier id, get a fresh one.
func (r *SiteRegistry) ImportSites(ctx context.Context, payload []byte) bool {
	log := logging.FromContext(ctx)

	var shape struct {
		Sites json.RawMessage `json:"sites"`
	}
	if err := json.Unmarshal(payload, &shape); err != nil {
		log.Warn().Err(err).Msg("import payload is not a JSON object")
		return false
	}

	raw := bytes.TrimSpace(shape.Sites)
	if len(raw) == 0 || raw[0] != '[' {
		log.Warn().Msg("import payload has no sites array")
		return false
	}

	var sites entity.SiteList
	if err := json.Unmarshal(raw, &sites); err != nil {
		log.Warn().Err(err).Msg("import payload sites are malformed")
		return false
	}

	assigned := r.assignMissingIDs(sites)
	log.Info().Int("count", len(sites)).Int("ids_assigned", assigned).Msg("importing sites")
	return r.SaveSites(ctx, sites)
}

// assignMissingIDs gives every record with an empty or repeated id a fresh
// one, keeping the first occurrence of a repeated id. It returns how many
// ids were assigned.
func (r *SiteRegistry) assignMissingIDs(sites entity.SiteList) int {
	seen := make(map[entity.SiteID]struct{}, len(sites))
	assigned := 0
	for i := range sites {
		if _, dup := seen[sites[i].ID]; sites[i].ID == "" || dup {
			sites[i].ID = r.GenerateID()
			assigned++
		}
		seen[sites[i].ID] = struct{}{}
	}
	return assigned
}
