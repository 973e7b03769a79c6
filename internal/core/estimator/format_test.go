package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"passwordSecurityDemo/internal/core/domain"
)

func TestFormatStrengthTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "Less than a second"},
		{0.5, "Less than a second"},
		{1, "1 seconds"},
		{30.4, "30 seconds"},
		{59.6, "60 seconds"},
		{90, "2 minutes"},
		{7200, "2 hours"},
		{3 * 86400, "3 days"},
		{31536001, "1 years"},
		{31536000 * 999, "999 years"},
		{31535999999, "1000 years"},
		{31536000000, "1 billion years"},
		{31536000000 * 5, "5 billion years"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatStrengthTime(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestFormatAttackTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0.5, "Less than a second"},
		{90, "2 minutes"},
		{31536001, "1 years"},
		{31536000 * 123456, "123,456 years"},
		{31536000 * 2.5e6, "2.5 × 10^6 years"},
		{31536000 * 7.4e20, "7.4 × 10^20 years"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAttackTime(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestFormattersDiverge(t *testing.T) {
	seconds := 31536000.0 * 5000
	assert.Equal(t, "5 billion years", FormatStrengthTime(seconds))
	assert.Equal(t, "5,000 years", FormatAttackTime(seconds))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5K"},
		{2_500_000, "2.5M"},
		{7.3e9, "7.3B"},
		{1.2e13, "1.2 × 10^13"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.value), "value=%v", tt.value)
	}
}

func TestSecurityLevel(t *testing.T) {
	tests := []struct {
		timeToCrack string
		want        domain.SecurityLevel
	}{
		{"12 billion years", domain.SecurityExcellent},
		{"1,234 years", domain.SecurityGood},
		{"3.1 × 10^9 years", domain.SecurityGood},
		{"4 days", domain.SecurityFair},
		{"7 hours", domain.SecurityFair},
		{"12 minutes", domain.SecurityPoor},
		{"Less than a second", domain.SecurityPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SecurityLevel(tt.timeToCrack), tt.timeToCrack)
	}
}
