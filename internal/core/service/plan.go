package service

import (
	"math"
	"math/big"
	"time"

	"passwordSecurityDemo/internal/core/algorithm"
	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/core/estimator"
)

// Unreachable marks a target index the counter can never get to.
const Unreachable = math.MaxUint64

// plan holds everything a run needs, fixed when the run starts.
type plan struct {
	password  string
	method    domain.AttackMethod
	speed     float64
	generator algorithm.Generator
	estimate  domain.AttackEstimate

	target    uint64
	reachable bool
	ceiling   uint64
	batch     uint64

	// Offsets within one period where a cyclic generator yields password.
	period  uint64
	matches []uint64
}

func newPlan(password string, method domain.AttackMethod, speed float64, tick time.Duration) (*plan, error) {
	generator, err := algorithm.NewGenerator(method.ID, password)
	if err != nil {
		return nil, err
	}

	codec := algorithm.NewBruteForce(password)
	target, reachable := uint64(Unreachable), false
	if idx, ok := codec.IndexOf(password); ok {
		target = saturate(idx)
		reachable = target != Unreachable
	}

	estimate := estimator.EstimateAttack(password, method, speed)
	total := saturate(codec.Space())
	baseline := floatToCount(estimate.TotalCombinations)

	p := &plan{
		password:  password,
		method:    method,
		speed:     speed,
		generator: generator,
		estimate:  estimate,
		target:    target,
		reachable: reachable,
		ceiling:   min(total, max(addSat(target, 1), baseline)),
		batch:     batchSize(estimate.AttemptsPerSecond, tick),
	}

	if c, ok := generator.(algorithm.Cyclic); ok && !generator.Bijective() {
		p.period = c.Period()
		for i := uint64(0); i < p.period; i++ {
			if generator.Attempt(i) == password {
				p.matches = append(p.matches, i)
			}
		}
	}
	return p, nil
}

// batchSize spreads rate evenly over the ticks of one second.
func batchSize(rate float64, tick time.Duration) uint64 {
	ticksPerSecond := float64(time.Second) / float64(tick)
	return max(1, floatToCount(math.Floor(rate/ticksPerSecond)))
}

// firstHit finds the first index in [from, to) the run stops at: the target
// index, or a generated attempt that equals the password.
func (p *plan) firstHit(from, to uint64) (uint64, bool) {
	if from >= to {
		return 0, false
	}

	hit, found := uint64(0), false
	if p.reachable && p.target < to {
		hit, found = max(p.target, from), true
	}
	if p.generator.Bijective() {
		// A bijective generator yields the password only at the target.
		return hit, found
	}

	if p.period > 0 {
		if m, ok := p.nextMatch(from); ok && m < to && (!found || m < hit) {
			return m, true
		}
		return hit, found
	}

	limit := to
	if found {
		limit = hit
	}
	for i := from; i < limit; i++ {
		if p.generator.Attempt(i) == p.password {
			return i, true
		}
	}
	return hit, found
}

func (p *plan) nextMatch(from uint64) (uint64, bool) {
	if len(p.matches) == 0 {
		return 0, false
	}
	base := from - from%p.period
	for _, cycle := range []uint64{base, addSat(base, p.period)} {
		for _, offset := range p.matches {
			if idx := addSat(cycle, offset); idx >= from && idx != Unreachable {
				return idx, true
			}
		}
	}
	return 0, false
}

func (p *plan) progress(attempt uint64) float64 {
	if p.ceiling == 0 {
		return 100
	}
	return min(100, float64(attempt)/float64(p.ceiling)*100)
}

func saturate(n *big.Int) uint64 {
	if n.Sign() < 0 {
		return 0
	}
	if !n.IsUint64() {
		return math.MaxUint64
	}
	return n.Uint64()
}

// floatToCount converts a non-negative count, saturating at MaxUint64.
func floatToCount(v float64) uint64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint64:
		return math.MaxUint64
	}
	return uint64(v)
}

func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
