// Package steering computes per-agent reactive steering outputs
//
// Every function writes into a caller-owned output vector and never allocates. Temporaries are
// stack values; the only reusable buffers live in an explicit Scratch passed by the caller, so the
// functions are reentrant as long as each goroutine owns its Scratch.
//
// Behaviors are throttled on the agent's LiveTime. A function that is not due zeroes its output and
// returns false, leaving the caller's cached contribution from the last due tick in effect.
package steering
