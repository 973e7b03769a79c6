package desktop

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/core/service"
	"passwordSecurityDemo/internal/port"
)

type DesktopLib struct {
	simulator service.SimulationService
	generator service.GeneratorService
	analyzer  service.AnalysisService
	clipboard port.Clipboard
	logger    *slog.Logger
	config    *Config
}

func NewDesktopLib(
	simulator service.SimulationService,
	generator service.GeneratorService,
	analyzer service.AnalysisService,
	clipboard port.Clipboard,
	logger *slog.Logger,
	cfg *Config,
) *DesktopLib {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DesktopLib{
		simulator: simulator,
		generator: generator,
		analyzer:  analyzer,
		clipboard: clipboard,
		logger:    logger.With(slog.String("platform", "desktop")),
		config:    cfg,
	}
}

// Direct library methods for desktop applications

func (d *DesktopLib) Generate(opts domain.GenerateOptions) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.config.GenerateTimeout)
	defer cancel()
	return d.generator.Generate(ctx, opts)
}

// CheckStrength trims the suggestions to what the strength panel shows.
func (d *DesktopLib) CheckStrength(password string) domain.StrengthResult {
	result := d.analyzer.Strength(password)
	result.Suggestions = result.TopSuggestions(d.config.MaxSuggestions)
	return result
}

func (d *DesktopLib) Dashboard(password string) domain.Dashboard {
	return d.analyzer.Dashboard(password)
}

func (d *DesktopLib) Methods() []domain.AttackMethod {
	return domain.AttackMethods()
}

func (d *DesktopLib) SetPassword(password string) error {
	return d.simulator.SetPassword(context.Background(), password)
}

func (d *DesktopLib) SelectMethod(id domain.MethodID) error {
	return d.simulator.SelectMethod(context.Background(), id)
}

func (d *DesktopLib) SetSpeed(multiplier float64) error {
	return d.simulator.SetSpeedMultiplier(context.Background(), multiplier)
}

func (d *DesktopLib) StartSimulation() error {
	return d.simulator.Start(context.Background())
}

func (d *DesktopLib) StopSimulation() {
	d.simulator.Stop(context.Background())
}

func (d *DesktopLib) ResetSimulation() {
	d.simulator.Reset(context.Background())
}

func (d *DesktopLib) Progress() domain.SimulationProgress {
	return d.simulator.Progress()
}

func (d *DesktopLib) Subscribe(fn func(domain.SimulationProgress)) {
	d.simulator.OnUpdate(fn)
}

// Copy puts text on the clipboard. A failure is logged and returned; it is
// not retried.
func (d *DesktopLib) Copy(text string) error {
	if d.clipboard == nil {
		return errors.New("clipboard unavailable")
	}
	if err := d.writeClipboard(text); err != nil {
		d.logger.Warn("copy to clipboard failed", slog.Any("error", err))
		return errors.Wrap(err, "copy to clipboard")
	}
	return nil
}

// writeClipboard gives up after CopyTimeout. A write still blocked at that
// point finishes in the background.
func (d *DesktopLib) writeClipboard(text string) error {
	if d.config.CopyTimeout <= 0 {
		return d.clipboard.WriteText(text)
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.config.CopyTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- d.clipboard.WriteText(text) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close tears the simulation view down.
func (d *DesktopLib) Close() {
	d.simulator.Close()
}
