package port

import (
	"context"

	"github.com/bnema/toolip/internal/domain/entity"
)

// ThemeApplier sets the theme class on the document root of a surface.
type ThemeApplier interface {
	ApplyTheme(ctx context.Context, theme entity.Theme)
}

// NavigationRenderer draws the panel navigation.
type NavigationRenderer interface {
	RenderNavigation(ctx context.Context, items []entity.NavItem)
}
