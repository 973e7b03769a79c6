package service

import (
	"unicode/utf8"

	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/core/estimator"
)

// Analyzer builds the security dashboard for a password.
type Analyzer struct {
	speed float64
}

// NewAnalyzer estimates attacks at speed times each method's base rate.
func NewAnalyzer(speed float64) *Analyzer {
	if speed < 1 {
		speed = 1
	}
	return &Analyzer{speed: speed}
}

func (a *Analyzer) Strength(password string) domain.StrengthResult {
	return estimator.EstimateStrength(password)
}

// Dashboard reports strength plus one estimate per attack method, in the
// order of domain.AttackMethods.
func (a *Analyzer) Dashboard(password string) domain.Dashboard {
	methods := domain.AttackMethods()
	reports := make([]domain.MethodReport, 0, len(methods))
	for _, m := range methods {
		estimate := estimator.EstimateAttack(password, m, a.speed)
		reports = append(reports, domain.MethodReport{
			Method:   m,
			Estimate: estimate,
			Security: estimator.SecurityLevel(estimate.TimeToCrack),
		})
	}

	return domain.Dashboard{
		Length:   utf8.RuneCountInString(password),
		Strength: estimator.EstimateStrength(password),
		Attacks:  reports,
	}
}
