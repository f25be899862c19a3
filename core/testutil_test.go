package core_test

import "math/rand"

// byteSum is a minimal test problem: the cost of a buffer is the sum of its
// bytes. The minimum (all zeros) and maximum (all 0xFF) are known, neighbors
// rewrite one random position, so descent behavior is easy to predict.
type byteSum struct {
	n int
}

func (p byteSum) Dimension() int { return p.n }
func (p byteSum) ElemSize() int  { return 1 }

func (p byteSum) Cost(buf []byte) float64 {
	var (
		sum float64
		b   byte
	)
	for _, b = range buf {
		sum += float64(b)
	}

	return sum
}

func (p byteSum) Neighbor(cur, out []byte, rng *rand.Rand) {
	copy(out, cur)
	out[rng.Intn(len(out))] = byte(rng.Intn(256))
}

func (p byteSum) Generate(out []byte, rng *rand.Rand) {
	var i int
	for i = range out {
		out[i] = byte(rng.Intn(256))
	}
}
