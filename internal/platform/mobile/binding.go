package mobile

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/core/service"
)

const generateTimeout = 5 * time.Second

// MobileBinding exposes the engine to iOS/Android as string-in, JSON-out
// calls.
type MobileBinding struct {
	simulator service.SimulationService
	generator service.GeneratorService
	analyzer  service.AnalysisService
}

func NewMobileBinding(simulator service.SimulationService, generator service.GeneratorService, analyzer service.AnalysisService) *MobileBinding {
	return &MobileBinding{simulator: simulator, generator: generator, analyzer: analyzer}
}

func (m *MobileBinding) Generate(optionsJSON string) string {
	var opts domain.GenerateOptions
	if err := json.Unmarshal([]byte(optionsJSON), &opts); err != nil {
		return createErrorResponse(errors.Wrap(err, "decode options"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()
	password, err := m.generator.Generate(ctx, opts)
	return respond(map[string]string{"password": password}, err)
}

func (m *MobileBinding) CheckStrength(password string) string {
	return createSuccessResponse(m.analyzer.Strength(password))
}

func (m *MobileBinding) Dashboard(password string) string {
	return createSuccessResponse(m.analyzer.Dashboard(password))
}

func (m *MobileBinding) Methods() string {
	return createSuccessResponse(domain.AttackMethods())
}

func (m *MobileBinding) SetPassword(password string) string {
	return m.progressOr(m.simulator.SetPassword(context.Background(), password))
}

func (m *MobileBinding) SelectMethod(id string) string {
	return m.progressOr(m.simulator.SelectMethod(context.Background(), domain.MethodID(id)))
}

func (m *MobileBinding) SetSpeed(multiplier float64) string {
	return m.progressOr(m.simulator.SetSpeedMultiplier(context.Background(), multiplier))
}

func (m *MobileBinding) Start() string {
	return m.progressOr(m.simulator.Start(context.Background()))
}

func (m *MobileBinding) Stop() string {
	m.simulator.Stop(context.Background())
	return m.GetProgress()
}

func (m *MobileBinding) Reset() string {
	m.simulator.Reset(context.Background())
	return m.GetProgress()
}

func (m *MobileBinding) GetProgress() string {
	return createSuccessResponse(m.simulator.Progress())
}

func (m *MobileBinding) progressOr(err error) string {
	if err != nil {
		return createErrorResponse(err)
	}
	return m.GetProgress()
}
