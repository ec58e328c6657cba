// Package surface provides surface implementations for the panel container.
package surface

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/domain/entity"
	domainurl "github.com/bnema/toolip/internal/domain/url"
	"github.com/bnema/toolip/internal/logging"
)

// ErrRelativeURL is returned when a surface is requested for a non-absolute URL.
var ErrRelativeURL = errors.New("surface url must be absolute")

// HeadlessFactory creates surfaces that only track visibility and lifetime.
// It backs the terminal panel, where the page itself lives in the browser.
type HeadlessFactory struct {
	nextID atomic.Uint64

	mu   sync.Mutex
	live map[port.SurfaceID]*Headless
}

// NewHeadlessFactory creates an empty factory.
func NewHeadlessFactory() *HeadlessFactory {
	return &HeadlessFactory{live: make(map[port.SurfaceID]*Headless)}
}

// Create implements port.SurfaceFactory. New surfaces start hidden.
func (f *HeadlessFactory) Create(ctx context.Context, spec entity.SurfaceSpec) (port.Surface, error) {
	if !domainurl.IsAbsolute(spec.URL) {
		return nil, ErrRelativeURL
	}

	s := &Headless{
		id:      port.SurfaceID(f.nextID.Add(1)),
		spec:    spec,
		factory: f,
	}

	f.mu.Lock()
	f.live[s.id] = s
	f.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Uint64("surface_id", uint64(s.id)).
		Str("url", spec.URL).
		Str("allow", spec.AllowAttribute()).
		Msg("surface created")
	return s, nil
}

// Live returns the number of surfaces not yet released.
func (f *HeadlessFactory) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

func (f *HeadlessFactory) forget(id port.SurfaceID) {
	f.mu.Lock()
	delete(f.live, id)
	f.mu.Unlock()
}

// Headless is a surface without a rendering backend.
type Headless struct {
	id      port.SurfaceID
	spec    entity.SurfaceSpec
	factory *HeadlessFactory

	visible  atomic.Bool
	released atomic.Bool
	shows    atomic.Int64
}

func (s *Headless) ID() port.SurfaceID { return s.id }
func (s *Headless) URL() string        { return s.spec.URL }

// Spec returns the creation parameters.
func (s *Headless) Spec() entity.SurfaceSpec { return s.spec }

func (s *Headless) Show() {
	if s.released.Load() {
		return
	}
	s.visible.Store(true)
	s.shows.Add(1)
}

func (s *Headless) Hide() { s.visible.Store(false) }

func (s *Headless) IsVisible() bool { return s.visible.Load() }

// ShowCount returns how many times the surface was shown.
func (s *Headless) ShowCount() int64 { return s.shows.Load() }

// Released returns true once Release has been called.
func (s *Headless) Released() bool { return s.released.Load() }

func (s *Headless) Release() {
	if s.released.Swap(true) {
		return
	}
	s.visible.Store(false)
	if s.factory != nil {
		s.factory.forget(s.id)
	}
}

var (
	_ port.SurfaceFactory = (*HeadlessFactory)(nil)
	_ port.Surface        = (*Headless)(nil)
)
