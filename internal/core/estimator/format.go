package estimator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"passwordSecurityDemo/internal/core/domain"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31536000
)

var englishPrinter = message.NewPrinter(language.English)

// roundHalfUp rounds .5 towards +Inf, matching the rounding the time
// buckets were designed with.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// formatWhole prints an integral float without grouping, switching to
// exponent form from 1e21.
func formatWhole(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsNaN(v):
		return "NaN"
	case math.Abs(v) < 1e21:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// formatShortTime covers the buckets below one year shared by both time
// formatters.
func formatShortTime(seconds float64) (string, bool) {
	switch {
	case seconds < 1:
		return "Less than a second", true
	case seconds < secondsPerMinute:
		return formatWhole(roundHalfUp(seconds)) + " seconds", true
	case seconds < secondsPerHour:
		return formatWhole(roundHalfUp(seconds/secondsPerMinute)) + " minutes", true
	case seconds < secondsPerDay:
		return formatWhole(roundHalfUp(seconds/secondsPerHour)) + " hours", true
	case seconds < secondsPerYear:
		return formatWhole(roundHalfUp(seconds/secondsPerDay)) + " days", true
	}
	return "", false
}

// FormatStrengthTime formats the strength estimator's crack time. Past
// 31.536 billion seconds it counts billions of years.
func FormatStrengthTime(seconds float64) string {
	if s, ok := formatShortTime(seconds); ok {
		return s
	}
	if seconds < secondsPerYear*1000 {
		return formatWhole(roundHalfUp(seconds/secondsPerYear)) + " years"
	}
	return formatWhole(roundHalfUp(seconds/(secondsPerYear*1000))) + " billion years"
}

// FormatAttackTime formats an attack estimate's crack time: grouped whole
// years below a million years, scientific notation above.
func FormatAttackTime(seconds float64) string {
	if math.IsInf(seconds, 1) || math.IsNaN(seconds) {
		seconds = math.MaxFloat64
	}
	if s, ok := formatShortTime(seconds); ok {
		return s
	}

	years := seconds / secondsPerYear
	if years < 1e6 {
		return englishPrinter.Sprintf("%d", int64(roundHalfUp(years))) + " years"
	}
	return scientific(years) + " years"
}

// FormatNumber abbreviates counts and rates for display.
func FormatNumber(v float64) string {
	switch {
	case v < 1e3:
		return formatWhole(v)
	case v < 1e6:
		return fmt.Sprintf("%.1fK", v/1e3)
	case v < 1e9:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v < 1e12:
		return fmt.Sprintf("%.1fB", v/1e9)
	}
	return scientific(v)
}

func scientific(v float64) string {
	exponent := math.Floor(math.Log10(v))
	mantissa := v / math.Pow(10, exponent)
	return fmt.Sprintf("%.1f × 10^%d", mantissa, int(exponent))
}

// SecurityLevel buckets a formatted crack time for the dashboard.
func SecurityLevel(timeToCrack string) domain.SecurityLevel {
	switch {
	case strings.Contains(timeToCrack, "billion years"), strings.Contains(timeToCrack, "million years"):
		return domain.SecurityExcellent
	case strings.Contains(timeToCrack, "years"):
		return domain.SecurityGood
	case strings.Contains(timeToCrack, "days"), strings.Contains(timeToCrack, "hours"):
		return domain.SecurityFair
	default:
		return domain.SecurityPoor
	}
}
