package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"docintake/internal/config"
	"docintake/internal/intake"
	"docintake/internal/logging"
	"docintake/internal/telemetry"
	"docintake/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "docintake",
		Short:         "Collect applicants and their documents in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting",
		zap.String("start_dir", cfg.Browse.StartDir),
		zap.Bool("tracing", provider.Enabled()),
	)
	store := intake.NewStore(
		intake.WithLogger(logger.Named("intake")),
		intake.WithTracer(provider.Tracer(intake.TracerName)),
	)
	model := ui.NewAppModel(ctx, ui.Options{
		Store:      store,
		Logger:     logger.Named("ui"),
		StartDir:   cfg.Browse.StartDir,
		ShowHidden: cfg.Browse.ShowHidden,
	}).AsTeaModel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	st := store.State()
	logger.Info("exiting", zap.Int("applicants", st.Len()))
	return nil
}
