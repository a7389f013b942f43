// Package bjj implements the group interfaces for the BabyJubJub curve,
// a twisted Edwards curve defined over the BN254 scalar field.
//
// BabyJubJub is designed for efficient use inside zkSNARK circuits,
// making this backend suitable when the distributed key must later be
// consumed by circuit-friendly primitives.
//
// The implementation wraps gnark-crypto's optimized field and curve
// arithmetic. Points encode to gnark's 32-byte compressed form; the
// identity element is the affine point (0, 1).
package bjj
