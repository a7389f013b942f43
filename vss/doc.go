// Package vss implements Pedersen verifiable secret sharing over an
// abstract cryptographic group.
//
// A dealer splits a secret with [SplitSecret], producing Shamir shares
// of the secret and of a companion blinding value, plus two commitment
// vectors over the dealt polynomial coefficients:
//
//   - Pedersen commitments a_k*M + b_k*H, which hide the coefficients
//     information-theoretically while binding them computationally
//   - Feldman commitments a_k*M, which expose coefficient images and
//     allow public share verification once disclosure is safe
//
// Recipients check their share pair with [VerifyPedersen] without
// learning anything about the secret, and later re-check the secret
// share alone with [VerifyFeldman] once the dealer publishes the
// Feldman vector. [Combine] reconstructs the secret from a threshold
// of shares by Lagrange interpolation at zero.
//
// Shares carry their evaluation point in the first byte, so a share is
// self-describing and identifiers are limited to [1, 255].
package vss
