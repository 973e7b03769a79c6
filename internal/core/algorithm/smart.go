package algorithm

import (
	"strings"

	"passwordSecurityDemo/internal/core/domain"
)

var smartPatterns = []string{
	"123456789", "qwertyuiop", "asdfghjkl", "zxcvbnm",
	"abcdefgh", "password", "admin", "root", "user",
}

type substitution struct {
	from string
	to   string
}

var leetSubstitutions = []substitution{
	{"a", "@"}, {"e", "3"}, {"i", "1"}, {"o", "0"}, {"s", "$"}, {"t", "7"},
}

const smartPasses = 6

// Smart cycles keyboard and word patterns, each pass replacing one letter
// with its leet form.
type Smart struct {
	patterns      []string
	substitutions []substitution
}

func NewSmart() *Smart {
	return &Smart{
		patterns:      smartPatterns,
		substitutions: leetSubstitutions,
	}
}

func (s *Smart) Attempt(index uint64) string {
	n := uint64(len(s.patterns))
	if index < n {
		return s.patterns[index]
	}

	result := s.patterns[index%n]
	// Pass 0 is the plain pattern; passes 1-5 use the first five substitutions.
	pass := (index / n) % smartPasses
	if pass > 0 {
		sub := s.substitutions[pass-1]
		result = strings.ReplaceAll(result, sub.from, sub.to)
	}
	return result
}

func (s *Smart) Period() uint64 {
	return uint64(len(s.patterns)) * smartPasses
}

func (s *Smart) Name() domain.MethodID {
	return domain.MethodSmart
}

func (s *Smart) Bijective() bool {
	return false
}
