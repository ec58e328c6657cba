// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (rendering backend, storage, IPC).
package port

import (
	"context"

	"github.com/bnema/toolip/internal/domain/entity"
)

// SurfaceID uniquely identifies an embedded surface instance.
type SurfaceID uint64

// Surface is an isolated rendering context displaying one site.
// Hidden surfaces keep their live page state.
type Surface interface {
	ID() SurfaceID
	URL() string
	Show()
	Hide()
	IsVisible() bool
	// Release destroys the surface. It is safe to call more than once.
	Release()
}

// SurfaceFactory creates embedded surfaces inside the panel container.
type SurfaceFactory interface {
	Create(ctx context.Context, spec entity.SurfaceSpec) (Surface, error)
}
