package panel

import (
	"context"
	"sync"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/application/usecase"
	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/logging"
)

// SessionDeps wires a Session. Theme and Nav may be nil.
type SessionDeps struct {
	Registry    *usecase.SiteRegistry
	Multiplexer *Multiplexer
	State       port.PanelStateStore
	Theme       port.ThemeApplier
	Nav         port.NavigationRenderer
}

// Session is the state of one open panel. All methods are safe for
// concurrent use; the sync bridge calls in from its own goroutine.
type Session struct {
	registry *usecase.SiteRegistry
	mux      *Multiplexer
	state    port.PanelStateStore
	applier  port.ThemeApplier
	nav      port.NavigationRenderer

	mu          sync.Mutex
	sites       entity.SiteList
	current     string
	activeTheme entity.Theme
	navigation  []entity.NavItem
}

// NewSession creates an unloaded session. Call Load before anything else.
func NewSession(deps SessionDeps) *Session {
	return &Session{
		registry: deps.Registry,
		mux:      deps.Multiplexer,
		state:    deps.State,
		applier:  deps.Theme,
		nav:      deps.Nav,
	}
}

// Load reads sites and theme, then reopens the last URL if it is still
// listed, otherwise the first site.
func (s *Session) Load(ctx context.Context) error {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sites = s.registry.GetSites(ctx)
	s.applyThemeLocked(ctx, s.registry.GetTheme(ctx))

	saved := ""
	if s.state != nil {
		url, err := s.state.LoadCurrentURL(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to restore current url")
		}
		saved = url
	}

	target := s.pickTarget(saved)
	log.Info().Int("sites", len(s.sites)).Str("restored", saved).Str("open", target).Msg("panel loaded")
	if target == "" {
		s.renderLocked(ctx)
		return nil
	}
	if err := s.openLocked(ctx, target); err != nil {
		log.Warn().Err(err).Str("url", target).Msg("could not open site on load")
	}
	return nil
}

// Open shows url, remembers it as the current URL and redraws navigation.
func (s *Session) Open(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openLocked(ctx, url)
}

// OpenIndex opens the site at navigation position i.
func (s *Session) OpenIndex(ctx context.Context, i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.sites) {
		return entity.ErrIndexOutOfRange
	}
	return s.openLocked(ctx, s.sites[i].URL)
}

// ReloadSites re-reads the list and rebuilds navigation. Cached surfaces are
// kept so sites still listed resume their state.
func (s *Session) ReloadSites(ctx context.Context) error {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sites = s.registry.GetSites(ctx)
	target := s.pickTarget(s.current)

	log.Debug().
		Int("sites", len(s.sites)).
		Str("previous", s.current).
		Str("open", target).
		Msg("panel sites reloaded")

	if target == "" {
		s.current = ""
		s.renderLocked(ctx)
		return nil
	}
	if err := s.openLocked(ctx, target); err != nil {
		log.Warn().Err(err).Str("url", target).Msg("could not open site after reload")
	}
	return nil
}

// ApplyTheme switches the theme without touching sites or surfaces.
func (s *Session) ApplyTheme(ctx context.Context, theme entity.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyThemeLocked(ctx, theme)
}

// RefreshTheme re-reads the persisted theme and applies it.
func (s *Session) RefreshTheme(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyThemeLocked(ctx, s.registry.GetTheme(ctx))
}

// Close releases every surface.
func (s *Session) Close(ctx context.Context) {
	s.mux.Close(ctx)
}

// Sites returns the listed sites.
func (s *Session) Sites() entity.SiteList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sites.Clone()
}

// CurrentURL returns the URL shown in the panel.
func (s *Session) CurrentURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Theme returns the applied theme.
func (s *Session) Theme() entity.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTheme
}

// Navigation returns the last rendered navigation.
func (s *Session) Navigation() []entity.NavItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.NavItem, len(s.navigation))
	copy(out, s.navigation)
	return out
}

// Stats returns multiplexer counters.
func (s *Session) Stats() Stats {
	return s.mux.Stats()
}

// pickTarget returns preferred if listed, else the first site, else "".
func (s *Session) pickTarget(preferred string) string {
	if preferred != "" && s.sites.ContainsURL(preferred) {
		return preferred
	}
	if first, ok := s.sites.First(); ok {
		return first.URL
	}
	return ""
}

// openLocked makes url current and redraws navigation even when its surface
// cannot be created, so navigation always matches the listed sites. Only a
// successful open is remembered across restarts.
func (s *Session) openLocked(ctx context.Context, url string) error {
	ctx = logging.WithSite(ctx, url)
	_, err := s.mux.Open(ctx, url)
	s.current = url
	if err != nil {
		s.renderLocked(ctx)
		return err
	}

	if s.state != nil {
		if err := s.state.SaveCurrentURL(ctx, url); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to persist current url")
		}
	}
	s.renderLocked(ctx)
	return nil
}

func (s *Session) renderLocked(ctx context.Context) {
	s.navigation = BuildNavigation(s.sites, s.current)
	if s.nav != nil {
		s.nav.RenderNavigation(ctx, s.navigation)
	}
}

func (s *Session) applyThemeLocked(ctx context.Context, theme entity.Theme) {
	if !theme.Valid() {
		theme = entity.DefaultTheme
	}
	s.activeTheme = theme
	if s.applier != nil {
		s.applier.ApplyTheme(ctx, theme)
	}
	logging.FromContext(ctx).Debug().Str("theme", string(theme)).Msg("theme applied")
}
