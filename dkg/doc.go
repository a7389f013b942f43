// Package dkg implements Gennaro's distributed key generation protocol
// over an arbitrary prime-order group.
//
// A fixed set of n participants, each holding a unique identifier in
// [1, n], jointly produces a shared public key and per-participant
// Shamir shares of the corresponding secret, without the secret ever
// existing in one place. Any t shares reconstruct the secret via
// Lagrange interpolation; fewer reveal nothing.
//
// # Protocol flow
//
// Each participant is a [Participant] state machine driven through five
// rounds. The caller moves messages between participants; the package
// never touches the network.
//
//  1. [Participant.Round1] commits to a random contribution under
//     Pedersen commitments and deals a private share pair to every
//     other participant.
//  2. [Participant.Round2] verifies every peer's commitments and share
//     pair. Cheating or silent peers are dropped, not fatal; the round
//     returns the local view of who survived.
//  3. [Participant.Round3] cross-checks those views. Only peers whose
//     view matches exactly are kept, so all survivors agree on the
//     membership. The round then publishes Feldman commitments, which
//     are safe to reveal once membership is settled.
//  4. [Participant.Round4] re-verifies every stored share against the
//     Feldman commitments — a mismatch after round 2 is proof of
//     equivocation and aborts — then sums shares into the secret share
//     and constant-term commitments into the joint public key.
//  5. [Participant.Round5] confirms every survivor computed the same
//     public key.
//
// Rounds 3 and 5 are echo broadcasts: each participant retransmits its
// view of the protocol state so the survivors converge or abort.
//
// # Share refresh
//
// [RefreshParticipant] runs the same protocol with a zero secret. The
// resulting shares are addends: adding a refresh share to an existing
// share yields a fresh share of the unchanged secret, which
// invalidates any previously leaked shares.
//
// # Example
//
// A 2-of-3 run over secp256k1, with the message fan-out elided:
//
//	params, _ := dkg.NewParameters(k256.New(), 2, 3)
//	p1, _ := dkg.NewParticipant(1, params)
//	p2, _ := dkg.NewParticipant(2, params)
//	p3, _ := dkg.NewParticipant(3, params)
//
//	b1, p2p1, _ := p1.Round1()
//	// ... all participants run rounds 1-5, exchanging outputs ...
//
//	share := p1.SecretShare()
//	publicKey := p1.PublicKey()
//
// # Errors
//
// Failures surface as [InitializationError], [RoundError] or
// [SerializationError]. A round method that returns an error leaves the
// participant unchanged, so a call made out of order or with input keyed
// by the participant's own identifier can be repeated with correct input.
// A RoundError reporting a protocol failure is fatal: the caller must
// discard the participant and start a new run, optionally without the
// peers the error names. Errors never carry secret material.
package dkg
