package snowshoe

import (
	"crypto/rand"
	"errors"
)

// PublicKey is a curve point in the uncompressed 64-byte encoding
// (32-byte big-endian x, 32-byte big-endian y).
type PublicKey [64]byte

// KeyPair holds a validated secret scalar and its derived public key.
type KeyPair struct {
	seckey [32]byte
	pubkey PublicKey
}

// SeckeyVerify reports whether seckey is a 32-byte encoding of a nonzero
// scalar less than the curve order q.
func SeckeyVerify(seckey []byte) bool {
	if len(seckey) != 32 {
		return false
	}
	var s u256
	if !u256SetB32Unmasked(&s, seckey) {
		return false
	}
	if u256IsZero(&s) {
		return false
	}
	return u256Less(&s, &qWord)
}

// SeckeyGenerate draws a fresh secret scalar from crypto/rand. Masking to
// 251 bits guarantees the result is less than q (see scalar254.go's
// ecMaskScalar); only an all-zero draw is retried.
func SeckeyGenerate() ([32]byte, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return buf, err
	}
	var s u256
	u256SetB32(&s, buf[:])
	u256GetB32(&s, buf[:])
	if u256IsZero(&s) {
		return SeckeyGenerate()
	}
	return buf, nil
}

// PubkeyCreate derives the public key seckey*G for a validated secret key.
func PubkeyCreate(seckey []byte) (*PublicKey, error) {
	if !SeckeyVerify(seckey) {
		return nil, errors.New("snowshoe: invalid secret key")
	}
	var s u256
	u256SetB32Unmasked(&s, seckey)

	var affine ecptAffine
	ECMulGen(&affine, &s, false)

	var pub PublicKey
	feGetB32(&affine.x, pub[:32])
	feGetB32(&affine.y, pub[32:])
	return &pub, nil
}

// KeyPairGenerate generates a fresh key pair.
func KeyPairGenerate() (*KeyPair, error) {
	seckey, err := SeckeyGenerate()
	if err != nil {
		return nil, err
	}
	pub, err := PubkeyCreate(seckey[:])
	if err != nil {
		return nil, err
	}
	return &KeyPair{seckey: seckey, pubkey: *pub}, nil
}

// KeyPairCreate builds a key pair from an explicit secret key.
func KeyPairCreate(seckey []byte) (*KeyPair, error) {
	pub, err := PubkeyCreate(seckey)
	if err != nil {
		return nil, err
	}
	kp := &KeyPair{pubkey: *pub}
	copy(kp.seckey[:], seckey)
	return kp, nil
}

// Seckey returns a copy of the key pair's secret key bytes.
func (kp *KeyPair) Seckey() []byte {
	out := make([]byte, 32)
	copy(out, kp.seckey[:])
	return out
}

// Pubkey returns the key pair's public key.
func (kp *KeyPair) Pubkey() *PublicKey {
	return &kp.pubkey
}

// Clear wipes the key pair's secret key.
func (kp *KeyPair) Clear() {
	memclear_32(&kp.seckey)
}

func memclear_32(a *[32]byte) {
	for i := range a {
		a[i] = 0
	}
}

// PubkeyParse parses an uncompressed 64-byte public key, validating that
// the resulting point lies on the curve.
func PubkeyParse(pub *PublicKey, data []byte) error {
	if len(data) != 64 {
		return errors.New("snowshoe: public key must be 64 bytes")
	}
	var affine ecptAffine
	if !feSetB32(&affine.x, data[:32]) || !feSetB32(&affine.y, data[32:]) {
		return errors.New("snowshoe: malformed public key")
	}
	if !pointOnCurve(&affine) {
		return errors.New("snowshoe: public key is not on the curve")
	}
	if !pointInSubgroup(&affine) {
		return errors.New("snowshoe: public key is not in the prime-order subgroup")
	}
	copy(pub[:], data)
	return nil
}

// pointOnCurve checks -x^2 + y^2 == 1 + d*x^2*y^2 (mod p).
func pointOnCurve(a *ecptAffine) bool {
	var x2, y2, lhs, rhs, dx2y2 fe
	feSqr(&x2, &a.x)
	feSqr(&y2, &a.y)
	feNeg(&lhs, &x2)
	feAdd(&lhs, &lhs, &y2)

	feMul(&dx2y2, &x2, &y2)
	feMul(&dx2y2, &dx2y2, &curveD)
	feAdd(&rhs, &feOne, &dx2y2)

	return feEqual(&lhs, &rhs)
}

// pointInSubgroup checks q*a == identity via a plain (non-GLS) double-and-
// add ladder. ecMulLadder's GLS decomposition is only exact for points of
// order q (see DESIGN.md); every externally supplied point — a parsed
// public key, a Schnorr signature's R, an ECDH peer key — must be checked
// here before it reaches ECMul/ECMulGen/ECSimul, since a point in one of
// the curve's other order-4q cosets would make that decomposition silently
// compute the wrong multiple.
func pointInSubgroup(a *ecptAffine) bool {
	var acc ecpt
	ecZero(&acc)
	var base ecpt
	ecExpand(a, &base)
	for i := 255; i >= 0; i-- {
		ecDbl(&acc, &acc)
		if u256Bit(&qWord, i) == 1 {
			ecAdd(&acc, &acc, &base, false, true)
		}
	}
	var out ecptAffine
	ecAffine(&acc, &out)
	return feIsZero(&out.x) && feEqual(&out.y, &feOne)
}

// SeckeyNegate negates seckey in place modulo q, returning false if seckey
// is not a valid secret key.
func SeckeyNegate(seckey []byte) bool {
	if !SeckeyVerify(seckey) {
		return false
	}
	var s, neg u256
	u256SetB32Unmasked(&s, seckey)
	negModQ(&neg, &s)
	u256GetB32(&neg, seckey)
	return true
}

// u256SetB32Unmasked parses a 32-byte big-endian scalar without masking,
// for callers (SeckeyVerify, PubkeyCreate) that need to validate an
// externally supplied scalar exactly as given.
func u256SetB32Unmasked(r *u256, b []byte) bool {
	if len(b) != 32 {
		return false
	}
	for i := 0; i < 4; i++ {
		r[i] = uint64(b[31-8*i]) | uint64(b[30-8*i])<<8 | uint64(b[29-8*i])<<16 | uint64(b[28-8*i])<<24 |
			uint64(b[27-8*i])<<32 | uint64(b[26-8*i])<<40 | uint64(b[25-8*i])<<48 | uint64(b[24-8*i])<<56
	}
	return true
}
