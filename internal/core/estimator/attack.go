package estimator

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"passwordSecurityDemo/internal/core/algorithm"
	"passwordSecurityDemo/internal/core/domain"
)

const (
	capitalizationVariants = 4                           // lower, Title, UPPER, mixed
	digitSuffixVariants    = 1 + 10 + 100 + 1000 + 10000 // no suffix up to four digits
	symbolVariants         = 10                          // a handful of trailing symbols
	smartMinSpacePerWord   = 1000                        // mask tries per reference word
	defaultCharsetSize     = domain.LowerSize
)

// spaceAdjuster narrows the brute-force baseline for a method.
type spaceAdjuster func(password string, method domain.AttackMethod, baseline float64) float64

var spaceAdjusters = map[domain.MethodID]spaceAdjuster{
	domain.MethodBruteForce: func(_ string, _ domain.AttackMethod, baseline float64) float64 { return baseline },
	domain.MethodDictionary: dictionarySpace,
	domain.MethodSmart:      smartSpace,
}

// EstimateAttack sizes the search space method faces for password and how
// long an average-case search takes at speedMultiplier times its base rate.
// A non-positive multiplier counts as 1.
func EstimateAttack(password string, method domain.AttackMethod, speedMultiplier float64) domain.AttackEstimate {
	if password == "" {
		return domain.AttackEstimate{TimeToCrack: "N/A"}
	}
	if speedMultiplier <= 0 {
		speedMultiplier = 1
	}

	total := Baseline(password, method)
	if adjust, ok := spaceAdjusters[method.ID]; ok {
		total = adjust(password, method, total)
	}

	rate := method.AttemptsPerSecond * speedMultiplier
	seconds := math.Inf(1)
	if rate > 0 {
		seconds = total / (2 * rate)
	}

	return domain.AttackEstimate{
		TotalCombinations: total,
		TimeToCrack:       FormatAttackTime(seconds),
		AttemptsPerSecond: rate,
		CurrentAttempt:    placeholderAttempt(password, method.ID),
		Progress:          0,
	}
}

// CharsetSize is the method's fixed charset size, or the size of the
// classes present in password.
func CharsetSize(password string, method domain.AttackMethod) int {
	if method.CharsetSize != 0 {
		return method.CharsetSize
	}
	if size := domain.Classify(password).Size(); size != 0 {
		return size
	}
	return defaultCharsetSize
}

// Baseline is charsetSize^length, capped at the largest float64.
func Baseline(password string, method domain.AttackMethod) float64 {
	size := float64(CharsetSize(password, method))
	total := math.Pow(size, float64(utf8.RuneCountInString(password)))
	if math.IsInf(total, 1) {
		return math.MaxFloat64
	}
	return total
}

func dictionarySpace(password string, method domain.AttackMethod, _ float64) float64 {
	if idx := slices.Index(domain.CommonWords, strings.ToLower(password)); idx >= 0 {
		return float64(idx + 1)
	}

	dictSize := max(method.CharsetSize, len(domain.CommonWords))
	return float64(dictSize * (capitalizationVariants + digitSuffixVariants + symbolVariants))
}

func smartSpace(password string, _ domain.AttackMethod, baseline float64) float64 {
	classes := domain.Classify(password)
	length := utf8.RuneCountInString(password)
	containsWord := containsCommonWord(password)

	factor := 0.01
	if containsWord && classes.Digit && !classes.Symbol {
		factor = 0.001
	}
	if containsWord && classes.Symbol {
		factor = 0.0005
	}
	if length <= 8 && (classes.Lower || classes.Upper) && classes.Digit && !classes.Symbol {
		factor = 0.0001
	}
	if !classes.Upper && classes.Lower && classes.Digit && !classes.Symbol {
		factor = min(factor, 0.0005)
	}

	floor := float64(len(domain.CommonWords) * smartMinSpacePerWord)
	return max(floor, math.Floor(baseline*factor))
}

func containsCommonWord(password string) bool {
	lower := strings.ToLower(password)
	for _, word := range domain.CommonWords {
		if len(word) >= 4 && strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func placeholderAttempt(password string, method domain.MethodID) string {
	g, err := algorithm.NewGenerator(method, password)
	if err != nil {
		g = algorithm.NewBruteForce(password)
	}
	return g.Attempt(0)
}
