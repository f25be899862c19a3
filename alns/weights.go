// Package alns - operator-weight learning: roulette selection, reward
// accumulation and the periodic blend.
//
// Invariants:
//   - every weight ≥ weightFloor at all times, so the vector sum is strictly
//     positive;
//   - score and usage reset to zero after each blend;
//   - operators with zero usage in a window keep their prior weight.
package alns

import "math/rand"

// weightFloor is the minimum operator weight after any update.
const weightFloor = 0.01

// initialWeight is the uniform starting weight of every operator.
const initialWeight = 1.0

// rouletteEps is the total-weight threshold below which selection falls back
// to uniform choice.
const rouletteEps = 1e-12

// opState tracks one operator's adaptive bookkeeping within a run.
type opState struct {
	weight float64 // selection weight, ≥ weightFloor
	score  float64 // reward accumulated since the last blend
	usage  int     // selections since the last blend
}

// opPool is a fixed set of operators under roulette selection.
type opPool struct {
	ops []opState
}

func newOpPool(n int) *opPool {
	var p = &opPool{ops: make([]opState, n)}
	var i int
	for i = 0; i < n; i++ {
		p.ops[i].weight = initialWeight
	}

	return p
}

// pick selects one operator index with probability proportional to weight and
// counts the selection as usage. A ≈0 total weight degrades to uniform choice.
//
// Complexity: O(n).
func (p *opPool) pick(rng *rand.Rand) int {
	var (
		total float64
		i     int
	)
	for i = range p.ops {
		total += p.ops[i].weight
	}

	var chosen int
	if total <= rouletteEps {
		// Degenerate state, not an error: uniform fallback.
		chosen = rng.Intn(len(p.ops))
	} else {
		var r = rng.Float64() * total
		var acc float64
		chosen = len(p.ops) - 1
		for i = range p.ops {
			acc += p.ops[i].weight
			if r <= acc {
				chosen = i

				break
			}
		}
	}
	p.ops[chosen].usage++

	return chosen
}

// reward credits r to operator i. Rewards accumulate; weights move only at the
// next blend.
func (p *opPool) reward(i int, r float64) {
	p.ops[i].score += r
}

// blend applies the periodic weight update to every operator used since the
// last blend, then resets score/usage across the pool.
//
//	weight ← decay·weight + (1−decay)·(score/usage), floored at weightFloor.
func (p *opPool) blend(decay float64) {
	var i int
	for i = range p.ops {
		if p.ops[i].usage > 0 {
			var mean = p.ops[i].score / float64(p.ops[i].usage)
			p.ops[i].weight = decay*p.ops[i].weight + (1-decay)*mean
			if p.ops[i].weight < weightFloor {
				p.ops[i].weight = weightFloor
			}
		}
		p.ops[i].score = 0
		p.ops[i].usage = 0
	}
}

// weights copies the current weight vector (for results/diagnostics).
func (p *opPool) weights() []float64 {
	var out = make([]float64, len(p.ops))
	var i int
	for i = range p.ops {
		out[i] = p.ops[i].weight
	}

	return out
}
