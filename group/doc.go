// Package group defines abstract interfaces for cryptographic groups
// used by the distributed key generation protocol.
//
// This package provides three core interfaces that abstract over the
// mathematical operations needed for discrete-log threshold cryptography:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// All operations that can fail return errors rather than panicking, making
// error handling explicit and predictable.
//
// # Implementing a Group
//
// To implement these interfaces for a new elliptic curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create a Point type that wraps your curve point and implements [Point]
//  3. Create a Group type that implements [Group] as a factory
//
// See the k256, ed25519 and bjj packages for complete implementations.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Equality and identity checks run in constant time
//   - Random scalars are generated from cryptographically secure sources
//   - Invalid curve points are rejected in SetBytes
//
// Scalars holding secret material expose [Scalar.Zeroize] so protocol
// state can be wiped when a participant is dropped.
package group
