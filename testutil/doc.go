// Package testutil provides testing utilities for bitmapgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator for producing
// reproducible index workloads.
//
// # Random Index Generation
//
//	rng := testutil.NewRNG(seed)
//	dense := rng.Indices(1000, 1<<12)   // many collisions
//	sparse := rng.Indices(1000, 1<<20)  // widely scattered
//
// # Expected Cardinalities
//
//	want := len(testutil.Distinct(indices))
package testutil
