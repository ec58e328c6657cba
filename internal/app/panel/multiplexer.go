// Package panel hosts the side panel: one live surface per opened site,
// the navigation bar and the sync bridge that keeps both current.
package panel

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/logging"
)

// Stats counts multiplexer activity since creation.
type Stats struct {
	Created int
	Reused  int
	Evicted int
	Live    int
}

// Multiplexer shows exactly one surface at a time and keeps hidden ones alive
// so switching back preserves page state.
type Multiplexer struct {
	factory port.SurfaceFactory

	mu      sync.Mutex
	cache   FrameCache
	current string
	created int
	reused  int
}

// NewMultiplexer creates a multiplexer. A nil cache means unbounded.
func NewMultiplexer(factory port.SurfaceFactory, frames FrameCache) *Multiplexer {
	if frames == nil {
		frames = newUnboundedCache()
	}
	return &Multiplexer{factory: factory, cache: frames}
}

// Open hides every surface and shows the one for url, creating it on first use.
// It reports whether a new surface was created.
func (m *Multiplexer) Open(ctx context.Context, url string) (bool, error) {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.cache.Surfaces() {
		s.Hide()
	}

	if s, ok := m.cache.Get(url); ok {
		s.Show()
		m.current = url
		m.reused++
		log.Debug().Str("url", url).Uint64("surface_id", uint64(s.ID())).Msg("surface reused")
		return false, nil
	}

	s, err := m.factory.Create(ctx, entity.NewSurfaceSpec(url))
	if err != nil {
		return false, fmt.Errorf("failed to create surface for %s: %w", url, err)
	}
	m.cache.Put(url, s)
	s.Show()
	m.current = url
	m.created++

	log.Debug().Str("url", url).Int("cached", m.cache.Len()).Msg("surface created")
	return true, nil
}

// Current returns the url of the visible surface, or "".
func (m *Multiplexer) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Has returns true if a surface for url is cached.
func (m *Multiplexer) Has(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.cache.Surfaces() {
		if s.URL() == url {
			return true
		}
	}
	return false
}

// Stats returns a snapshot of the counters.
func (m *Multiplexer) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{
		Created: m.created,
		Reused:  m.reused,
		Evicted: m.cache.Evictions(),
		Live:    m.cache.Len(),
	}
}

// Close releases every surface. The multiplexer may be reused afterwards.
func (m *Multiplexer) Close(ctx context.Context) {
	m.mu.Lock()
	surfaces := m.cache.Drain()
	m.current = ""
	m.mu.Unlock()

	for _, s := range surfaces {
		s.Release()
	}
	logging.FromContext(ctx).Debug().Int("released", len(surfaces)).Msg("surfaces released")
}
