// Package grasp implements the Greedy Randomized Adaptive Search Procedure.
//
// Each restart builds a solution through the problem's core.Constructor
// capability — greedy construction randomized by a restricted candidate list
// whose tightness is controlled by Alpha (0 purely greedy, 1 purely random) —
// then descends with the shared best-of-K kernel. The best solution across all
// restarts is returned; restarts draw from independent derived RNG streams so
// construction order cannot correlate between restarts.
package grasp
