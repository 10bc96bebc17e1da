// Package damage resolves the damage one move deals to one target.
//
// A resolution runs the stat resolver, the multiplier pipeline (status, type and
// STAB, spread, critical hit, variance) and the level/power/attack/defense
// formula, then rounds and clamps the result to at least 1. Everything in the
// package is deterministic and free of shared mutable state.
package damage
