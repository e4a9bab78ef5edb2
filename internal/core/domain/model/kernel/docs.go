// Package kernel contains shared value objects used across domain aggregates.
// These are small immutable types with validated constructors that enforce
// their own invariants.
package kernel
