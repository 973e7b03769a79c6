package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.uber.org/fx"

	"passwordSecurityDemo/internal/adapter/clipboard"
	"passwordSecurityDemo/internal/adapter/storage"
	"passwordSecurityDemo/internal/config"
	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/core/estimator"
	"passwordSecurityDemo/internal/core/service"
	"passwordSecurityDemo/internal/core/snapshot"
	"passwordSecurityDemo/internal/pkg/concurrency"
	"passwordSecurityDemo/internal/pkg/logs"
	"passwordSecurityDemo/internal/pkg/metrics"
	"passwordSecurityDemo/internal/platform/desktop"
	"passwordSecurityDemo/internal/platform/mobile"
	"passwordSecurityDemo/internal/port"
)

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectService(),
		injectPlatform(),
		fx.Invoke(runDemo),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		storage.New,
		newSnapshotStore,
		newScheduler,
		newMetrics,
		newClipboard,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		newSimulator,
		newPasswordService,
		newAnalyzer,
	)
}

func injectPlatform() fx.Option {
	return fx.Provide(
		newDesktopLib,
		mobile.NewMobileBinding,
	)
}

func newSnapshotStore(kv port.KeyValueStorage, cfg *config.Config, logger *slog.Logger) port.SnapshotStore {
	return snapshot.NewStore(kv, cfg.Storage.Key, logger)
}

func newScheduler() port.Scheduler {
	return concurrency.NewTickerScheduler()
}

func newMetrics(lc fx.Lifecycle, cfg *config.Config) (port.MetricsRecorder, error) {
	if !cfg.Metrics.Enabled {
		return nil, nil
	}

	var reporter *metrics.Reporter
	if cfg.Metrics.ReportPath != "" {
		r, err := metrics.NewReporter(cfg.Metrics.ReportPath)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return r.Close() }})
		reporter = r
	}
	return metrics.NewCollector(cfg.Metrics.SampleInterval, reporter), nil
}

func newClipboard() port.Clipboard {
	return clipboard.NewOSC52(os.Stdout)
}

func newSimulator(
	lc fx.Lifecycle,
	scheduler port.Scheduler,
	store port.SnapshotStore,
	recorder port.MetricsRecorder,
	logger *slog.Logger,
	cfg *config.Config,
) service.SimulationService {
	sim := service.NewSimulator(scheduler, store, recorder, logger, cfg.Simulation)
	lc.Append(fx.Hook{OnStop: func(context.Context) error {
		sim.Close()
		return nil
	}})
	return sim
}

func newPasswordService(cfg *config.Config, logger *slog.Logger) service.GeneratorService {
	return service.NewPasswordService(cfg.Generator, logger)
}

func newAnalyzer(cfg *config.Config) service.AnalysisService {
	return service.NewAnalyzer(cfg.Simulation.DefaultSpeed)
}

func newDesktopLib(
	simulator service.SimulationService,
	generator service.GeneratorService,
	analyzer service.AnalysisService,
	clip port.Clipboard,
	logger *slog.Logger,
) *desktop.DesktopLib {
	return desktop.NewDesktopLib(simulator, generator, analyzer, clip, logger, desktop.NewDefaultConfig())
}

type demoParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Lib        *desktop.DesktopLib
	Binding    *mobile.MobileBinding
	Config     *config.Config
	Logger     *slog.Logger
}

// runDemo cracks a password given as the first argument, or a short
// generated one, printing progress until the attack succeeds.
func runDemo(params demoParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go demo(params)
			return nil
		},
	})
}

func demo(params demoParams) {
	lib, logger := params.Lib, params.Logger
	shutdown := func(code int) {
		if err := params.Shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
			logger.Error("shutdown failed", slog.Any("error", err))
		}
	}

	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		generated, err := lib.Generate(domain.GenerateOptions{
			Length:           params.Config.Generator.MinLength,
			IncludeLowercase: true,
			IncludeNumbers:   true,
		})
		if err != nil {
			logger.Error("generate password failed", slog.Any("error", err))
			shutdown(1)
			return
		}
		password = generated
	}

	printDashboard(lib.Dashboard(password))

	var (
		mu          sync.Mutex
		once        sync.Once
		lastPrinted = -1
	)
	lib.Subscribe(func(p domain.SimulationProgress) {
		mu.Lock()
		if pct := int(p.Estimate.Progress); pct/10 > lastPrinted/10 || p.IsComplete {
			lastPrinted = pct
			fmt.Printf("%6.2f%%  attempt %-14s %s\n",
				p.Estimate.Progress, estimator.FormatNumber(float64(p.AttemptNumber)), p.Estimate.CurrentAttempt)
		}
		mu.Unlock()

		if p.IsComplete {
			once.Do(func() {
				fmt.Println(params.Binding.GetProgress())
				shutdown(0)
			})
		}
	})

	if err := lib.SetPassword(password); err != nil {
		logger.Error("set password failed", slog.Any("error", err))
		shutdown(1)
		return
	}
	// A stored snapshot may already have finished or resumed this password.
	if p := lib.Progress(); p.IsComplete || p.IsRunning {
		return
	}
	if err := lib.StartSimulation(); err != nil {
		logger.Error("start simulation failed", slog.Any("error", err))
		shutdown(1)
	}
}

func printDashboard(d domain.Dashboard) {
	fmt.Printf("password length %d, strength %d/100 (%s), entropy %.1f bits, %s at 1e9 guesses/s\n",
		d.Length, d.Strength.Score, d.Strength.Level, d.Strength.Entropy, d.Strength.TimeToCrack)
	for _, s := range d.Strength.TopSuggestions(3) {
		fmt.Printf("  - %s\n", s)
	}
	for _, r := range d.Attacks {
		fmt.Printf("%-22s %-24s %s\n", r.Method.Name, r.Estimate.TimeToCrack, r.Security)
	}
}
