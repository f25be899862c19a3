// Package vns implements Variable Neighborhood Search.
//
// The driver shakes the incumbent at neighborhood index k — a strength-k
// perturbation through the problem's core.Perturber capability (stacked
// Neighbor moves when absent) — then descends. Success resets k to 1; failure
// grows it, wrapping back to 1 past KMax. With VND enabled the flat descent is
// replaced by a strength-indexed variable neighborhood descent that sweeps
// shake strengths 1..KMax, restarting from 1 after every improvement.
package vns
