package domain

import "time"

type StrengthResult struct {
	Score       int           `json:"score"`
	Level       StrengthLevel `json:"level"`
	Entropy     float64       `json:"entropy"`
	TimeToCrack string        `json:"timeToCrack"`
	Suggestions []string      `json:"suggestions"`
}

// TopSuggestions returns at most n suggestions for display.
func (r StrengthResult) TopSuggestions(n int) []string {
	if n < 0 || n >= len(r.Suggestions) {
		return r.Suggestions
	}
	return r.Suggestions[:n]
}

type AttackEstimate struct {
	TotalCombinations float64 `json:"totalCombinations"`
	TimeToCrack       string  `json:"timeToCrack"`
	AttemptsPerSecond float64 `json:"attemptsPerSecond"`
	CurrentAttempt    string  `json:"currentAttempt"`
	Progress          float64 `json:"progress"`
}

// SimulationSnapshot is the persisted state of the simulation view.
type SimulationSnapshot struct {
	IsRunning       bool     `json:"isRunning"`
	Password        string   `json:"password"`
	SelectedMethod  MethodID `json:"selectedMethod"`
	SpeedMultiplier float64  `json:"speedMultiplier"`
	AttemptNumber   uint64   `json:"attemptNumber"`
	IsComplete      bool     `json:"isComplete"`
}

// GenerateOptions describes a password to generate. A zero Length means the
// configured default.
type GenerateOptions struct {
	Length           int  `json:"length" validate:"gte=0,lte=256"`
	IncludeUppercase bool `json:"includeUppercase"`
	IncludeLowercase bool `json:"includeLowercase"`
	IncludeNumbers   bool `json:"includeNumbers"`
	IncludeSymbols   bool `json:"includeSymbols"`
}

// SimulationProgress is what the simulation view renders after every change.
type SimulationProgress struct {
	RunID          string         `json:"runId,omitempty"`
	Password       string         `json:"password"`
	Method         MethodID       `json:"method"`
	Speed          float64        `json:"speedMultiplier"`
	Estimate       AttackEstimate `json:"estimate"`
	AttemptNumber  uint64         `json:"attemptNumber"`
	MaxAttempts    uint64         `json:"maxAttempts"`
	IsRunning      bool           `json:"isRunning"`
	IsComplete     bool           `json:"isComplete"`
	WasCracked     bool           `json:"wasCracked"`
	CrackedAttempt string         `json:"crackedAttempt,omitempty"`
	Elapsed        time.Duration  `json:"elapsed"`
}

type MethodReport struct {
	Method   AttackMethod   `json:"method"`
	Estimate AttackEstimate `json:"estimate"`
	Security SecurityLevel  `json:"security"`
}

// Dashboard is the security analysis of a single password.
type Dashboard struct {
	Length   int            `json:"length"`
	Strength StrengthResult `json:"strength"`
	Attacks  []MethodReport `json:"attacks"`
}

type ResourceMetrics struct {
	RunID          string    `json:"runId"`
	CPUUsage       float64   `json:"cpuUsage"`
	MemoryUsageMB  int64     `json:"memoryUsageMb"`
	HostMemoryPct  float64   `json:"hostMemoryPct"`
	Ticks          int64     `json:"ticks"`
	TotalAttempts  uint64    `json:"totalAttempts"`
	AttemptsPerSec float64   `json:"attemptsPerSec"`
	StartedAt      time.Time `json:"startedAt"`
	LastUpdated    time.Time `json:"lastUpdated"`
}
