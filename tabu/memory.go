// Package tabu - memory structures: bounded recency FIFO, long-term frequency
// table and the reactive tenure controller.
//
// Invariants maintained here:
//   - recency list length ≤ current tenure at every point (hard cap);
//   - frequency counts are monotonically non-decreasing (no reset policy is
//     wired into the engine);
//   - MinTenure ≤ tenure ≤ MaxTenure under reactive control.
package tabu

// entry is one recency record: solution hash + insertion iteration.
type entry struct {
	hash uint64
	iter int
}

// recencyList is the bounded tabu FIFO. It is a ring buffer sized to the
// largest reachable tenure plus one slot (a push may momentarily precede the
// trim), with companion maps for O(1) membership and last-insertion lookups.
type recencyList struct {
	ring  []entry        // fixed-capacity ring storage
	head  int            // index of the oldest entry
	size  int            // live entries in the ring
	count map[uint64]int // hash → live occurrences (handles re-inserted hashes)
	stamp map[uint64]int // hash → latest insertion iteration (never evicted)
}

// newRecencyList builds a list able to hold cap entries between trims.
func newRecencyList(cap int) *recencyList {
	return &recencyList{
		ring:  make([]entry, cap+1),
		count: make(map[uint64]int, cap+1),
		stamp: make(map[uint64]int, 4*(cap+1)),
	}
}

// Len returns the number of live entries.
func (l *recencyList) Len() int { return l.size }

// Contains reports whether h is currently tabu.
func (l *recencyList) Contains(h uint64) bool { return l.count[h] > 0 }

// LastSeen returns the latest iteration at which h was inserted, with a
// presence flag. Stamps survive eviction: they feed cycle detection and the
// least-recently-tabu fallback, both of which care about history, not
// membership.
func (l *recencyList) LastSeen(h uint64) (int, bool) {
	it, ok := l.stamp[h]

	return it, ok
}

// Push appends (h, iter) as the newest entry. Callers trim immediately after,
// so the momentary size never exceeds capacity.
func (l *recencyList) Push(h uint64, iter int) {
	var tail = (l.head + l.size) % len(l.ring)
	l.ring[tail] = entry{hash: h, iter: iter}
	l.size++
	l.count[h]++
	l.stamp[h] = iter
}

// TrimTo evicts oldest entries until the list holds at most tenure of them.
// Tenure is a hard cap: reactive shrinks evict several entries at once.
func (l *recencyList) TrimTo(tenure int) {
	if tenure < 0 {
		tenure = 0
	}
	var old entry
	for l.size > tenure {
		old = l.ring[l.head]
		l.head = (l.head + 1) % len(l.ring)
		l.size--

		l.count[old.hash]--
		if l.count[old.hash] <= 0 {
			delete(l.count, old.hash)
		}
	}
}

// freqTable is the long-term memory: visit counts per solution hash.
// Counts only grow; the diversification penalty and the low-frequency
// tie-break read them.
type freqTable map[uint64]int

// Bump records one visit of h.
func (f freqTable) Bump(h uint64) { f[h]++ }

// Count returns the visit count of h (0 when never seen).
func (f freqTable) Count(h uint64) int { return f[h] }

// tenureController implements the reactive tenure rule: grow on cycle
// evidence, decay after a calm stretch, always clamped to [min, max].
// With reactive disabled it reports the fixed tenure.
type tenureController struct {
	reactive bool
	tenure   int
	min      int
	max      int
	inc      int
	dec      int
	calm     int // repeat-free iterations required before one decay step
	calmRun  int // current repeat-free run length
}

func newTenureController(o Options) *tenureController {
	return &tenureController{
		reactive: o.Reactive,
		tenure:   o.Tenure,
		min:      o.MinTenure,
		max:      o.MaxTenure,
		inc:      o.ReactiveIncrease,
		dec:      o.ReactiveDecrease,
		calm:     o.CalmStretch,
	}
}

// Current returns the tenure in force.
func (c *tenureController) Current() int { return c.tenure }

// Observe feeds one iteration's cycle evidence into the controller.
// repeat==true means the chosen hash was re-seen within the cycle window.
func (c *tenureController) Observe(repeat bool) {
	if !c.reactive {
		return
	}

	if repeat {
		c.calmRun = 0
		c.tenure += c.inc
		if c.tenure > c.max {
			c.tenure = c.max
		}

		return
	}

	c.calmRun++
	if c.calmRun < c.calm {
		return
	}
	c.calmRun = 0
	c.tenure -= c.dec
	if c.tenure < c.min {
		c.tenure = c.min
	}
}
