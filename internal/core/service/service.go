package service

import (
	"context"

	"passwordSecurityDemo/internal/core/domain"
)

// SimulationService drives the attack animation.
type SimulationService interface {
	SetPassword(ctx context.Context, password string) error
	SelectMethod(ctx context.Context, id domain.MethodID) error
	SetSpeedMultiplier(ctx context.Context, speed float64) error
	Start(ctx context.Context) error
	Stop(ctx context.Context)
	Reset(ctx context.Context)
	Progress() domain.SimulationProgress
	OnUpdate(fn func(domain.SimulationProgress))
	Close()
}

type GeneratorService interface {
	Generate(ctx context.Context, opts domain.GenerateOptions) (string, error)
}

type AnalysisService interface {
	Strength(password string) domain.StrengthResult
	Dashboard(password string) domain.Dashboard
}

var (
	_ SimulationService = (*Simulator)(nil)
	_ GeneratorService  = (*PasswordService)(nil)
	_ AnalysisService   = (*Analyzer)(nil)
)
