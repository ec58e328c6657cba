package usecase

import (
	"context"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/logging"
)

// ChangeThemeUseCase switches the theme from the settings surface.
type ChangeThemeUseCase struct {
	registry  *SiteRegistry
	applier   port.ThemeApplier
	messenger port.Messenger
}

// NewChangeThemeUseCase creates a theme switcher. applier and messenger may be nil.
func NewChangeThemeUseCase(registry *SiteRegistry, applier port.ThemeApplier, messenger port.Messenger) *ChangeThemeUseCase {
	return &ChangeThemeUseCase{
		registry:  registry,
		applier:   applier,
		messenger: messenger,
	}
}

// Change persists theme, applies it locally and broadcasts themeChanged.
// It returns false when the theme is unknown or could not be saved; in that
// case nothing is applied or sent.
func (uc *ChangeThemeUseCase) Change(ctx context.Context, theme entity.Theme) bool {
	log := logging.FromContext(ctx)

	if !uc.registry.SaveTheme(ctx, theme) {
		return false
	}
	if uc.applier != nil {
		uc.applier.ApplyTheme(ctx, theme)
	}
	if uc.messenger != nil {
		// a missing listener is not an error
		if err := uc.messenger.Send(ctx, entity.NewThemeChangedMessage(theme)); err != nil {
			log.Debug().Err(err).Msg("theme change broadcast not delivered")
		}
	}

	log.Info().Str("theme", string(theme)).Msg("theme changed")
	return true
}
