package service

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordSecurityDemo/internal/core/domain"
)

const testTick = 16 * time.Millisecond

func TestNewPlan_CeilingCoversTarget(t *testing.T) {
	passwords := []string{"a", "abc", "zzzz", "Zz9!", "password", "P@ssw0rd", "letmein2024", "~~~~~~~~"}

	for _, password := range passwords {
		for _, method := range domain.AttackMethods() {
			p, err := newPlan(password, method, 1, testTick)
			require.NoError(t, err)
			require.True(t, p.reachable, password)
			assert.GreaterOrEqual(t, p.ceiling, addSat(p.target, 1), "%s/%s", password, method.ID)
		}
	}
}

func TestNewPlan_Example(t *testing.T) {
	p, err := newPlan("abc", domain.DefaultMethod(), 1, testTick)
	require.NoError(t, err)
	assert.Equal(t, uint64(28), p.target)
	assert.Equal(t, uint64(17576), p.ceiling)
	assert.Equal(t, uint64(16000), p.batch)
}

func TestNewPlan_SaturatesHugeSpaces(t *testing.T) {
	p, err := newPlan("correcthorsebatterystaple", domain.DefaultMethod(), 1, testTick)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), p.ceiling)

	p, err = newPlan("ünreachable", domain.DefaultMethod(), 1, testTick)
	require.NoError(t, err)
	assert.False(t, p.reachable)
	assert.Equal(t, uint64(Unreachable), p.target)
}

func TestBatchSize(t *testing.T) {
	tests := []struct {
		rate float64
		want uint64
	}{
		{rate: 1e6, want: 16000},
		{rate: 1e4, want: 160},
		{rate: 1e5 * 100, want: 160000},
		{rate: 10, want: 1},
		{rate: 0, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, batchSize(tt.rate, testTick), "rate %v", tt.rate)
	}
}

// listGenerator is neither bijective nor cyclic.
type listGenerator []string

func (l listGenerator) Attempt(index uint64) string {
	if index < uint64(len(l)) {
		return l[index]
	}
	return ""
}
func (l listGenerator) Name() domain.MethodID { return "list" }
func (l listGenerator) Bijective() bool       { return false }

func TestPlan_FirstHit(t *testing.T) {
	scan := &plan{
		password:  "hit",
		generator: listGenerator{"a", "b", "hit", "c"},
		target:    10,
		reachable: true,
	}

	tests := []struct {
		name     string
		p        *plan
		from, to uint64
		want     uint64
		wantOK   bool
	}{
		{name: "scan finds match", p: scan, from: 0, to: 5, want: 2, wantOK: true},
		{name: "scan window misses", p: scan, from: 3, to: 8},
		{name: "target in window", p: scan, from: 3, to: 20, want: 10, wantOK: true},
		{name: "past target", p: scan, from: 12, to: 20, want: 12, wantOK: true},
		{name: "empty window", p: scan, from: 5, to: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.firstHit(tt.from, tt.to)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPlan_NextMatchAcrossCycles(t *testing.T) {
	p, err := newPlan("p@ssword", domain.AttackMethods()[2], 1, testTick)
	require.NoError(t, err)
	require.Equal(t, []uint64{14}, p.matches)

	got, ok := p.firstHit(15, 100)
	assert.True(t, ok)
	assert.Equal(t, uint64(54+14), got)

	_, ok = p.firstHit(15, 60)
	assert.False(t, ok)
}
