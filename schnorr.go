package snowshoe

import "errors"

// SchnorrSign produces a 96-byte signature (R || s, 64 + 32 bytes) over a
// 32-byte message digest using kp's secret key.
//
// R is carried in full uncompressed form rather than BIP-340's x-only
// encoding: recovering R's y-coordinate from x alone needs a modular square
// root, and p ≡ 1 (mod 4) here rules out the cheap p ≡ 3 (mod 4) trick,
// leaving a full Tonelli-Shanks implementation as the only option. That
// algorithm's correctness cannot be checked without running the toolchain,
// so this signer spends 32 extra signature bytes instead. See DESIGN.md.
func SchnorrSign(sig []byte, msg []byte, kp *KeyPair) error {
	if len(sig) != 96 {
		return errors.New("snowshoe: signature buffer must be 96 bytes")
	}
	if len(msg) != 32 {
		return errors.New("snowshoe: message must be a 32-byte digest")
	}

	var sk u256
	u256SetB32Unmasked(&sk, kp.seckey[:])

	nonceSeed := TaggedHash([]byte("snowshoe/nonce"), kp.seckey[:], msg)
	var k u256
	u256SetB32(&k, nonceSeed[:])
	for u256IsZero(&k) {
		nonceSeed = TaggedHash([]byte("snowshoe/nonce"), nonceSeed[:], msg)
		u256SetB32(&k, nonceSeed[:])
	}

	var R ecptAffine
	ECMulGen(&R, &k, false)

	var Rbytes [64]byte
	feGetB32(&R.x, Rbytes[:32])
	feGetB32(&R.y, Rbytes[32:])

	challenge := TaggedHash([]byte("snowshoe/challenge"), Rbytes[:], kp.pubkey[:], msg)
	var e u256
	u256SetB32(&e, challenge[:])

	var eSk, s u256
	u256MulModQ(&eSk, &e, &sk)
	u256AddModQ(&s, &k, &eSk)

	copy(sig[:64], Rbytes[:])
	u256GetB32(&s, sig[64:96])

	u256Clear(&k)
	return nil
}

// SchnorrVerify checks a 96-byte signature produced by SchnorrSign against
// pub over a 32-byte message digest.
func SchnorrVerify(sig []byte, msg []byte, pub *PublicKey) (bool, error) {
	if len(sig) != 96 {
		return false, errors.New("snowshoe: signature must be 96 bytes")
	}
	if len(msg) != 32 {
		return false, errors.New("snowshoe: message must be a 32-byte digest")
	}

	var R ecptAffine
	if !feSetB32(&R.x, sig[:32]) || !feSetB32(&R.y, sig[32:64]) {
		return false, errors.New("snowshoe: malformed signature")
	}
	if !pointOnCurve(&R) {
		return false, errors.New("snowshoe: signature R is not on the curve")
	}
	if !pointInSubgroup(&R) {
		return false, errors.New("snowshoe: signature R is not in the prime-order subgroup")
	}

	var s u256
	u256SetB32Unmasked(&s, sig[64:96])
	if !u256Less(&s, &qWord) {
		return false, errors.New("snowshoe: signature s out of range")
	}

	challenge := TaggedHash([]byte("snowshoe/challenge"), sig[:64], pub[:], msg)
	var e u256
	u256SetB32(&e, challenge[:])

	var pubAffine ecptAffine
	if !feSetB32(&pubAffine.x, pub[:32]) || !feSetB32(&pubAffine.y, pub[32:]) {
		return false, errors.New("snowshoe: malformed public key")
	}
	if !pointOnCurve(&pubAffine) {
		return false, errors.New("snowshoe: public key is not on the curve")
	}
	if !pointInSubgroup(&pubAffine) {
		return false, errors.New("snowshoe: public key is not in the prime-order subgroup")
	}

	// ECMul always scales its result by the curve's cofactor (see mul.go),
	// so both sides of the check are scaled by it here too: since R, G and
	// pub all lie in the order-q subgroup and gcd(4, q) == 1, multiplying
	// the whole equation by 4 preserves it without changing its truth value.
	var sG ecptAffine
	ECMulGen(&sG, &s, true)

	var ePub ecptAffine
	ECMul(&ePub, &e, &pubAffine)

	var Rext, ePubExt, rhsExt ecpt
	ecExpand(&R, &Rext)
	ecDbl(&Rext, &Rext)
	ecDbl(&Rext, &Rext)
	ecExpand(&ePub, &ePubExt)
	ecAdd(&rhsExt, &Rext, &ePubExt, false, false)

	var rhsAffine ecptAffine
	ecAffine(&rhsExt, &rhsAffine)

	return feEqual(&sG.x, &rhsAffine.x) && feEqual(&sG.y, &rhsAffine.y), nil
}

// ECDH computes a shared secret between kp's secret key and peer's public
// key: seckey*peer, then hashes the resulting point's x-coordinate so the
// output is uniform over the full 32 bytes rather than leaking the point's
// field structure.
func ECDH(secret []byte, kp *KeyPair, peer *PublicKey) error {
	if len(secret) != 32 {
		return errors.New("snowshoe: secret buffer must be 32 bytes")
	}
	var peerAffine ecptAffine
	if !feSetB32(&peerAffine.x, peer[:32]) || !feSetB32(&peerAffine.y, peer[32:]) {
		return errors.New("snowshoe: malformed peer public key")
	}
	if !pointOnCurve(&peerAffine) {
		return errors.New("snowshoe: peer public key is not on the curve")
	}
	if !pointInSubgroup(&peerAffine) {
		return errors.New("snowshoe: peer public key is not in the prime-order subgroup")
	}

	var sk u256
	u256SetB32Unmasked(&sk, kp.seckey[:])

	var shared ecptAffine
	ECMul(&shared, &sk, &peerAffine)

	var xb [32]byte
	feGetB32(&shared.x, xb[:])
	digest := TaggedHash([]byte("snowshoe/ecdh"), xb[:])
	copy(secret, digest[:])
	return nil
}
