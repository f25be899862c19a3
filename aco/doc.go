// Package aco implements combinatorial Ant Colony Optimization over
// permutations.
//
// Each iteration a colony of ants constructs permutations element by element,
// choosing the next index with probability proportional to τ(prev,next)^α ·
// η(prev,next)^β over an optionally truncated candidate list, where τ is the
// pheromone matrix and η the caller's static heuristic desirability. After a
// colony sweep the pheromone evaporates geometrically (floored to keep every
// trail selectable) and the iteration-best permutation deposits Q/cost along
// its edges.
//
// The pheromone matrix has one virtual start row, so the choice of the first
// element is learned like any other transition. Costs must be strictly
// positive — the deposit rule divides by them.
package aco
