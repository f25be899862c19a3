package bench

import "math"

// Summary aggregates one metric over repeated runs.
type Summary struct {
	Best float64 // best (lowest) observed value
	Mean float64
	Std  float64 // population standard deviation
}

// Summarize computes a Summary over xs. An empty slice yields zeroes.
func Summarize(xs []float64) Summary {
	var n = len(xs)
	if n == 0 {
		return Summary{}
	}

	var (
		s   Summary
		sum float64
		i   int
	)
	s.Best = xs[0]
	for i = 0; i < n; i++ {
		sum += xs[i]
		if xs[i] < s.Best {
			s.Best = xs[i]
		}
	}
	s.Mean = sum / float64(n)

	var dev, acc float64
	for i = 0; i < n; i++ {
		dev = xs[i] - s.Mean
		acc += dev * dev
	}
	s.Std = math.Sqrt(acc / float64(n))

	return s
}
