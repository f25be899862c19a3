package bench

// AntTSP adapts EuclidTSP to the colony interface: integer permutations
// instead of byte buffers, plus the inverse-distance visibility heuristic.
type AntTSP struct {
	inst *EuclidTSP
}

// NewAntTSP wraps an instance for colony construction.
func NewAntTSP(inst *EuclidTSP) *AntTSP { return &AntTSP{inst: inst} }

// Dimension returns the number of cities.
func (a *AntTSP) Dimension() int { return a.inst.Dimension() }

// Cost returns the closed-tour length of perm.
func (a *AntTSP) Cost(perm []int) float64 {
	var (
		n   = len(perm)
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += a.inst.dist(perm[i], perm[(i+1)%n])
	}

	return sum
}

// Heuristic returns inverse distance; the virtual start row
// (from == Dimension()) treats every city as equally attractive so the first
// step is steered by pheromone alone.
func (a *AntTSP) Heuristic(from, to int) float64 {
	if from == a.inst.Dimension() {
		return 1
	}

	// Coincident cities get a large finite visibility so the roulette
	// weights stay well defined.
	var d = a.inst.dist(from, to)
	if d == 0 {
		return 1e12
	}

	return 1 / d
}
