// Package ed25519 implements the group interfaces for the edwards25519
// curve, backed by filippo.io/edwards25519.
//
// Scalars use the curve's 32-byte little-endian canonical encoding and
// non-canonical values are rejected on decode. Points use the standard
// 32-byte compressed Edwards encoding; the identity element encodes to
// a valid representation, so no special casing is needed.
package ed25519
