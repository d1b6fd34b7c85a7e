// Package sim provides the core Metropolis simulation engine for sparse
// spin and boolean energy models.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - poly.go: the Polynomial energy model and its container invariants
//   - adjacency.go: the per-variable incident-term index that makes flip
//     deltas O(local degree)
//   - engine.go: the Metropolis sweep loop, acceptance rule, schedules and
//     history retention
//
// # Architecture
//
// A model is a sparse multilinear polynomial over string variable labels
// (Polynomial, with Field and Coupling as its arity-1 and arity-2
// specializations). BuildAdjacency derives a read-only index from it, and
// Simulation owns the evolving assignment, the bounded history buffer and
// a per-instance random source. BooleanSimulation composes a Simulation
// and translates models and states between the boolean ({0,1}) and spin
// ({-1,+1}) domains at the boundary; all dynamics run in the spin engine.
//
// Sub-package sim/trace records optional per-sweep data for offline
// analysis.
//
// # Determinism
//
// Seed a Simulation with a SimulationKey to make runs reproducible: two
// identically constructed simulations seeded at the same call points
// produce bit-identical state and history sequences. Each instance owns
// its random source; nothing is process-wide.
package sim
