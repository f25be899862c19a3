// Package bench - Euclidean TSP fixture.
//
// Encoding: a solution buffer is a permutation of city indices, one byte per
// city. Instances are capped at 255 cities — a fixture limit, not an engine
// one — so the 0xFF value stays reserved: partial solutions used by the ALNS
// operators mark removed positions with it, and no valid city index can
// collide.
package bench

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlopt/alns"
	"github.com/katalvlaran/lvlopt/core"
)

var (
	// ErrBadInstance indicates an instance outside the supported shape
	// (< 3 or > 255 cities).
	ErrBadInstance = errors.New("bench: invalid TSP instance")
)

// removedMark is the partial-solution sentinel for ALNS destroy/repair.
const removedMark byte = 0xFF

// maxCities bounds the one-byte-per-city encoding; 0xFF stays reserved
// for removedMark.
const maxCities = 255

// EuclidTSP is a symmetric Euclidean TSP instance over plane points.
// Tours are closed cycles; cost is the full cyclic length.
type EuclidTSP struct {
	xs []float64
	ys []float64
}

// NewEuclidTSP builds an instance from plane points.
//
// Errors: ErrBadInstance for fewer than 3 or more than 255 points.
func NewEuclidTSP(points [][2]float64) (*EuclidTSP, error) {
	var n = len(points)
	if n < 3 || n > maxCities {
		return nil, ErrBadInstance
	}

	var (
		t = &EuclidTSP{
			xs: make([]float64, n),
			ys: make([]float64, n),
		}
		i int
	)
	for i = 0; i < n; i++ {
		t.xs[i] = points[i][0]
		t.ys[i] = points[i][1]
	}

	return t, nil
}

// RegularPolygon places n cities on a circle of the given radius — the optimal
// tour is the polygon boundary, which makes optima checkable in tests.
func RegularPolygon(n int, radius float64) (*EuclidTSP, error) {
	if n < 3 || n > maxCities {
		return nil, ErrBadInstance
	}

	var (
		pts = make([][2]float64, n)
		i   int
		th  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{radius * math.Cos(th), radius * math.Sin(th)}
	}

	return NewEuclidTSP(pts)
}

// RandomInstance draws n cities uniformly from the span×span square using the
// provided deterministic stream.
func RandomInstance(n int, span float64, rng *rand.Rand) (*EuclidTSP, error) {
	if n < 3 || n > maxCities || span <= 0 {
		return nil, ErrBadInstance
	}

	var (
		pts = make([][2]float64, n)
		i   int
	)
	for i = 0; i < n; i++ {
		pts[i] = [2]float64{rng.Float64() * span, rng.Float64() * span}
	}

	return NewEuclidTSP(pts)
}

// dist returns the Euclidean distance between cities i and j.
func (t *EuclidTSP) dist(i, j int) float64 {
	return math.Hypot(t.xs[i]-t.xs[j], t.ys[i]-t.ys[j])
}

// Dimension returns the number of cities.
func (t *EuclidTSP) Dimension() int { return len(t.xs) }

// ElemSize returns 1: one byte per city index.
func (t *EuclidTSP) ElemSize() int { return 1 }

// Cost sums the closed-tour length of the permutation in buf.
func (t *EuclidTSP) Cost(buf []byte) float64 {
	var (
		n   = len(buf)
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += t.dist(int(buf[i]), int(buf[(i+1)%n]))
	}

	return sum
}

// Generate writes a uniformly random permutation into out.
func (t *EuclidTSP) Generate(out []byte, rng *rand.Rand) {
	var (
		n = len(out)
		i int
		j int
	)
	for i = 0; i < n; i++ {
		out[i] = byte(i)
	}
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
}

// Neighbor writes a 2-opt style neighbor: cur with one random segment
// reversed.
func (t *EuclidTSP) Neighbor(cur, out []byte, rng *rand.Rand) {
	copy(out, cur)
	reverseRandomSegment(out, rng)
}

// Perturb stacks strength random segment reversals — the strong move consumed
// by ILS/VNS shakes.
func (t *EuclidTSP) Perturb(cur, out []byte, strength int, rng *rand.Rand) {
	copy(out, cur)
	var s int
	for s = 0; s < strength; s++ {
		reverseRandomSegment(out, rng)
	}
}

// reverseRandomSegment reverses out[i..j] for random i<j.
func reverseRandomSegment(out []byte, rng *rand.Rand) {
	var (
		n = len(out)
		i = rng.Intn(n)
		j = rng.Intn(n - 1)
	)
	if j >= i {
		j++
	} else {
		i, j = j, i
	}
	for i < j {
		out[i], out[j] = out[j], out[i]
		i++
		j--
	}
}

// Construct builds a greedily randomized nearest-neighbor tour: at each step
// the restricted candidate list holds every remaining city within
// dmin + alpha·(dmax−dmin) of the current one, and the next city is drawn
// uniformly from it. alpha=0 is pure greed, alpha=1 pure chance.
func (t *EuclidTSP) Construct(out []byte, alpha float64, rng *rand.Rand) {
	var (
		n         = len(out)
		remaining = make([]int, n)
		i, rem    int
		cur       int
	)
	for i = 0; i < n; i++ {
		remaining[i] = i
	}
	rem = n

	// Random start city.
	var pick = rng.Intn(rem)
	cur = remaining[pick]
	out[0] = byte(cur)
	remaining[pick], remaining[rem-1] = remaining[rem-1], remaining[pick]
	rem--

	var (
		pos        int
		dmin, dmax float64
		d, cut     float64
		rcl        int // candidates within the cutoff, packed to the front
	)
	for pos = 1; pos < n; pos++ {
		// Distance spread over the remaining cities.
		dmin, dmax = math.Inf(1), math.Inf(-1)
		for i = 0; i < rem; i++ {
			d = t.dist(cur, remaining[i])
			if d < dmin {
				dmin = d
			}
			if d > dmax {
				dmax = d
			}
		}
		cut = dmin + alpha*(dmax-dmin)

		// Pack RCL members to the front of the remaining set.
		rcl = 0
		for i = 0; i < rem; i++ {
			if t.dist(cur, remaining[i]) <= cut {
				remaining[i], remaining[rcl] = remaining[rcl], remaining[i]
				rcl++
			}
		}

		pick = rng.Intn(rcl)
		cur = remaining[pick]
		out[pos] = byte(cur)
		remaining[pick], remaining[rem-1] = remaining[rem-1], remaining[pick]
		rem--
	}
}

// Crossover performs order crossover (OX): child inherits a random segment
// from p1 and the remaining cities in p2 order.
func (t *EuclidTSP) Crossover(p1, p2, child []byte, rng *rand.Rand) {
	var (
		n    = len(child)
		a    = rng.Intn(n)
		b    = rng.Intn(n)
		used [maxCities]bool
		i    int
	)
	if a > b {
		a, b = b, a
	}

	for i = a; i <= b; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}

	var write = (b + 1) % n
	for i = 0; i < n; i++ {
		var c = p2[(b+1+i)%n]
		if used[c] {
			continue
		}
		child[write] = c
		write = (write + 1) % n
	}
}

// Mutate swaps two random positions.
func (t *EuclidTSP) Mutate(buf []byte, rng *rand.Rand) {
	var (
		n = len(buf)
		i = rng.Intn(n)
		j = rng.Intn(n - 1)
	)
	if j >= i {
		j++
	}
	buf[i], buf[j] = buf[j], buf[i]
}

// TourHash is a rotation-normalizing hash: every cyclic rotation of the same
// tour hashes identically (the tour is rotated so city 0 leads before FNV-1a).
// Plug it into tabu.Options.Hash when tours should be identified up to
// rotation.
func (t *EuclidTSP) TourHash(buf []byte) uint64 {
	var (
		n     = len(buf)
		start int
		i     int
	)
	for i = 0; i < n; i++ {
		if buf[i] == 0 {
			start = i

			break
		}
	}

	// FNV-1a over the rotated sequence, no scratch allocation.
	var h uint64 = 0xcbf29ce484222325
	for i = 0; i < n; i++ {
		h ^= uint64(buf[(start+i)%n])
		h *= 0x100000001b3
	}

	return h
}

// DestroyOps returns the fixture's destroy pool: random removal and
// worst-contribution removal.
func (t *EuclidTSP) DestroyOps() []alns.DestroyOp {
	return []alns.DestroyOp{
		{Name: "random", Apply: t.destroyRandom},
		{Name: "worst", Apply: t.destroyWorst},
	}
}

// RepairOps returns the fixture's repair pool: greedy nearest insertion and
// random insertion.
func (t *EuclidTSP) RepairOps() []alns.RepairOp {
	return []alns.RepairOp{
		{Name: "greedy", Apply: t.repairGreedy},
		{Name: "random", Apply: t.repairRandom},
	}
}

// removalCount converts a destroy degree into a position count in [1, n-2],
// always leaving at least two cities in place.
func removalCount(n int, degree float64) int {
	var k = int(math.Ceil(degree * float64(n)))
	if k < 1 {
		k = 1
	}
	if k > n-2 {
		k = n - 2
	}

	return k
}

// destroyRandom marks k uniformly random positions as removed.
func (t *EuclidTSP) destroyRandom(cur, out []byte, degree float64, rng *rand.Rand) {
	copy(out, cur)
	var (
		n = len(out)
		k = removalCount(n, degree)
	)
	for k > 0 {
		var i = rng.Intn(n)
		if out[i] == removedMark {
			continue
		}
		out[i] = removedMark
		k--
	}
}

// destroyWorst marks the k positions with the largest adjacent-edge
// contribution — the classic "worst removal" that targets expensive detours.
func (t *EuclidTSP) destroyWorst(cur, out []byte, degree float64, rng *rand.Rand) {
	copy(out, cur)
	var (
		n = len(out)
		k = removalCount(n, degree)
		i int
	)

	// Contribution of position i: dist(prev,i) + dist(i,next).
	var worst int
	var wcost, c float64
	for ; k > 0; k-- {
		worst = -1
		wcost = math.Inf(-1)
		for i = 0; i < n; i++ {
			if out[i] == removedMark {
				continue
			}
			c = t.contribution(out, i)
			if c > wcost {
				wcost = c
				worst = i
			}
		}
		out[worst] = removedMark
	}
	_ = rng
}

// contribution sums the tour edges adjacent to position i, skipping removed
// neighbors (their edges are already unaccounted).
func (t *EuclidTSP) contribution(buf []byte, i int) float64 {
	var (
		n    = len(buf)
		prev = buf[(i-1+n)%n]
		next = buf[(i+1)%n]
		sum  float64
	)
	if prev != removedMark {
		sum += t.dist(int(prev), int(buf[i]))
	}
	if next != removedMark {
		sum += t.dist(int(buf[i]), int(next))
	}

	return sum
}

// missingCities collects the cities absent from buf (those removed by a
// destroy operator), in ascending city order.
func missingCities(buf []byte, scratch *[maxCities]bool) []int {
	var (
		n    = len(buf)
		i    int
		miss []int
	)
	for i = range scratch {
		scratch[i] = false
	}
	for i = 0; i < n; i++ {
		if buf[i] != removedMark {
			scratch[buf[i]] = true
		}
	}
	for i = 0; i < n; i++ {
		if !scratch[i] {
			miss = append(miss, i)
		}
	}

	return miss
}

// repairGreedy fills removed slots left to right, each time inserting the
// missing city nearest to the previous (already placed) city.
func (t *EuclidTSP) repairGreedy(buf []byte, rng *rand.Rand) {
	var (
		n       = len(buf)
		seen    [maxCities]bool
		miss    = missingCities(buf, &seen)
		i, s    int
		prev    int
		nearest int
		d, dmin float64
	)
	_ = rng

	for i = 0; i < n && len(miss) > 0; i++ {
		if buf[i] != removedMark {
			continue
		}

		// Anchor on the closest preceding filled position.
		prev = -1
		for s = 1; s <= n; s++ {
			if buf[(i-s+n)%n] != removedMark {
				prev = int(buf[(i-s+n)%n])

				break
			}
		}

		nearest = 0
		dmin = math.Inf(1)
		for s = range miss {
			d = 0
			if prev >= 0 {
				d = t.dist(prev, miss[s])
			}
			if d < dmin {
				dmin = d
				nearest = s
			}
		}

		buf[i] = byte(miss[nearest])
		miss[nearest] = miss[len(miss)-1]
		miss = miss[:len(miss)-1]
	}
}

// repairRandom fills removed slots with the missing cities in random order.
func (t *EuclidTSP) repairRandom(buf []byte, rng *rand.Rand) {
	var (
		n    = len(buf)
		seen [maxCities]bool
		miss = missingCities(buf, &seen)
		i    int
	)
	core.ShuffleIntsInPlace(miss, rng)

	var next int
	for i = 0; i < n && next < len(miss); i++ {
		if buf[i] != removedMark {
			continue
		}
		buf[i] = byte(miss[next])
		next++
	}
}
