// Package k256 implements the group interfaces for the secp256k1 curve,
// backed by decred's field and scalar arithmetic. Point addition, scalar
// multiplication and scalar inversion use decred's variable-time
// (NonConst) routines; point equality compares canonical encodings in
// constant time.
//
// Points encode to the 33-byte compressed SEC1 form. The point at
// infinity has no SEC1 representation, so it encodes as 33 zero bytes;
// decoding accepts the same convention.
package k256
