package estimator

import (
	"math"
	"strings"
	"unicode/utf8"

	"passwordSecurityDemo/internal/core/domain"
)

// Modern GPU rate assumed by the strength estimate.
const referenceAttemptsPerSecond = 1e9

const (
	penaltyRepeated   = 15
	penaltySequential = 10
	penaltyCommon     = 20
	maxScore          = 100
)

var commonPatterns = []string{"123", "abc", "qwe", "asd", "password", "admin"}

type patternFlags struct {
	repeated   bool
	sequential bool
	common     bool
}

// EstimateStrength scores password from 0 to 100 and explains how to
// improve it.
func EstimateStrength(password string) domain.StrengthResult {
	if password == "" {
		return domain.StrengthResult{
			Score:       0,
			Level:       domain.StrengthWeak,
			Entropy:     0,
			TimeToCrack: "Instant",
			Suggestions: []string{"Enter a password to check its strength"},
		}
	}

	length := utf8.RuneCountInString(password)
	classes := domain.Classify(password)
	flags := detectPatterns(password)

	entropy := 0.0
	if size := classes.Size(); size > 0 {
		entropy = float64(length) * math.Log2(float64(size))
	}

	score := lengthScore(length) + 10*classes.Count()
	if flags.repeated {
		score -= penaltyRepeated
	}
	if flags.sequential {
		score -= penaltySequential
	}
	if flags.common {
		score -= penaltyCommon
	}
	score = max(0, min(maxScore, score))

	seconds := math.Pow(2, entropy) / (2 * referenceAttemptsPerSecond)

	return domain.StrengthResult{
		Score:       score,
		Level:       levelFor(score),
		Entropy:     entropy,
		TimeToCrack: FormatStrengthTime(seconds),
		Suggestions: suggestions(length, classes, flags),
	}
}

func lengthScore(length int) int {
	score := 0
	if length >= 8 {
		score += 20
	}
	if length >= 12 {
		score += 20
	}
	if length >= 16 {
		score += 20
	}
	if length >= 20 {
		score += 10
	}
	return score
}

func levelFor(score int) domain.StrengthLevel {
	switch {
	case score < 30:
		return domain.StrengthWeak
	case score < 60:
		return domain.StrengthFair
	case score < 80:
		return domain.StrengthGood
	default:
		return domain.StrengthStrong
	}
}

func detectPatterns(password string) patternFlags {
	var flags patternFlags
	runes := []rune(password)

	counts := make(map[rune]int, len(runes))
	for _, r := range runes {
		counts[r]++
		if counts[r] > 2 {
			flags.repeated = true
			break
		}
	}

	for i := 0; i+2 < len(runes); i++ {
		if runes[i+1] == runes[i]+1 && runes[i+2] == runes[i+1]+1 {
			flags.sequential = true
			break
		}
	}

	lower := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			flags.common = true
			break
		}
	}

	return flags
}

func suggestions(length int, classes domain.CharClasses, flags patternFlags) []string {
	out := []string{}
	if length < 8 {
		out = append(out, "Use at least 8 characters")
	}
	if length < 12 {
		out = append(out, "Consider using 12+ characters for better security")
	}
	if !classes.Upper {
		out = append(out, "Add uppercase letters")
	}
	if !classes.Lower {
		out = append(out, "Add lowercase letters")
	}
	if !classes.Digit {
		out = append(out, "Add numbers")
	}
	if !classes.Symbol {
		out = append(out, "Add special characters")
	}
	if flags.repeated {
		out = append(out, "Avoid repeating characters")
	}
	if flags.sequential {
		out = append(out, "Avoid sequential characters (123, abc)")
	}
	if flags.common {
		out = append(out, "Avoid common patterns and words")
	}
	return out
}
