package dkg

// Round5 confirms that every valid participant computed the same joint
// public key. Any missing or disagreeing echo is fatal. On success the
// run is complete: SecretShare and PublicKey hold the final values and
// every further round call errors.
func (p *Participant) Round5(echoes map[int]*Round4EchoBroadcast) error {
	if p.round != 5 || p.completed {
		return roundErr(5, "invalid call, participant is at round %d", p.round)
	}

	for _, j := range sortedIDs(p.validIDs) {
		if j == p.id {
			continue
		}
		echo, ok := echoes[j]
		if !ok || echo == nil {
			return roundErr(5, "missing echo from valid participant %d", j)
		}
		if echo.PublicKey == nil || !echo.PublicKey.Equal(p.publicKey) {
			return roundErr(5, "participant %d reported a different public key", j)
		}
	}

	p.completed = true
	return nil
}
