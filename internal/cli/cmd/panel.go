package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/toolip/internal/app/panel"
	"github.com/bnema/toolip/internal/application/usecase"
	"github.com/bnema/toolip/internal/cli"
	"github.com/bnema/toolip/internal/cli/model"
	"github.com/bnema/toolip/internal/infrastructure/config"
	"github.com/bnema/toolip/internal/infrastructure/storage"
	"github.com/bnema/toolip/internal/infrastructure/surface"
	"github.com/bnema/toolip/internal/logging"
)

var (
	panelFrameCache  string
	panelMaxSurfaces int
	panelOpenURL     string
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the sidebar panel in the terminal",
	Long: `Open the sidebar panel: a navigation list of the stored sites with one
live surface per opened site.

Changes made from another toolip process (sites edited, theme switched) are
picked up while the panel runs.`,
	Args: cobra.NoArgs,
	RunE: runPanel,
}

func init() {
	rootCmd.AddCommand(panelCmd)
	panelCmd.Flags().StringVar(&panelFrameCache, "frame-cache", "", "frame cache policy (unbounded or lru), overrides config")
	panelCmd.Flags().IntVar(&panelMaxSurfaces, "max-surfaces", 0, "surfaces kept by the lru policy, overrides config")
	panelCmd.Flags().StringVarP(&panelOpenURL, "open", "o", "", "open this URL instead of the last visited site")
}

// framePolicy resolves the frame cache settings from config and flags.
func framePolicy(cfg *config.Config, policyFlag string, maxFlag int) (panel.CachePolicy, int) {
	policy := panel.CachePolicy(cfg.Panel.FrameCache.Policy)
	if policyFlag != "" {
		policy = panel.CachePolicy(policyFlag)
	}
	maxSurfaces := cfg.Panel.FrameCache.MaxSurfaces
	if maxFlag > 0 {
		maxSurfaces = maxFlag
	}
	return policy, maxSurfaces
}

func runPanel(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	policy, maxSurfaces := framePolicy(a.Config, panelFrameCache, panelMaxSurfaces)
	frames, err := panel.NewFrameCache(policy, maxSurfaces)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(logging.WithComponent(a.Ctx(), "panel"))
	defer cancel()
	log := logging.FromContext(ctx)

	view := model.NewTerminalView()
	session := panel.NewSession(panel.SessionDeps{
		Registry:    a.Registry,
		Multiplexer: panel.NewMultiplexer(surface.NewHeadlessFactory(), frames),
		State:       a.State,
		Theme:       view,
		Nav:         view,
	})
	if err := session.Load(ctx); err != nil {
		return fmt.Errorf("failed to load panel: %w", err)
	}
	defer session.Close(ctx)

	if panelOpenURL != "" {
		if err := session.Open(ctx, panelOpenURL); err != nil {
			return err
		}
	}

	watchConfig(ctx, a)

	hub := a.Settings.Hub()
	bridge := panel.NewBridge(session, hub, a.Bus)
	watcher := storage.NewFileWatcher(a.Config.Database.Path, a.Store, hub, a.Config.WatchDebounce())
	themeUC := usecase.NewChangeThemeUseCase(a.Registry, session, a.Bus)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return bridge.Run(gctx) })
	g.Go(func() error { return watcher.Run(gctx) })
	g.Go(func() error {
		defer cancel()
		program := tea.NewProgram(
			model.NewPanelModel(gctx, session, themeUC, view),
			tea.WithAltScreen(),
			tea.WithContext(gctx),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("panel exited: %w", err)
		}
		return nil
	})

	err = g.Wait()
	stats := session.Stats()
	log.Debug().
		Int("created", stats.Created).
		Int("reused", stats.Reused).
		Int("evicted", stats.Evicted).
		Msg("panel closed")
	return err
}

// watchConfig logs config edits made while the panel runs. Frame cache and
// icon settings apply to the next panel start.
func watchConfig(ctx context.Context, a *cli.App) {
	if a.Manager == nil {
		return
	}
	log := logging.FromContext(ctx)
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		log.Info().
			Str("frame_cache", cfg.Panel.FrameCache.Policy).
			Str("default_list", cfg.Panel.DefaultList).
			Msg("configuration reloaded, restart the panel to apply")
	})
	if err := a.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	}
}
