package snowshoe

import (
	"math/bits"
	"unsafe"
)

// u256 is a 256-bit unsigned value as four little-endian 64-bit limbs, used
// for scalars and recoded-scalar working buffers.
type u256 [4]uint64

// Limbs of q, the prime order of the curve's large subgroup: q = 2^252 - 143,
// a 252-bit prime congruent to 1 mod 4 (required for the GLS endomorphism's
// eigenvalue lambda, with lambda^2 ≡ -1 (mod q), to exist at all). (The
// repository's domain parameters — p, q, d, and G — are pinned program
// constants rather than something this package derives; see DESIGN.md for
// how this particular q was chosen.)
const (
	qLimb0 = 0xffffffffffffff71
	qLimb1 = 0xffffffffffffffff
	qLimb2 = 0xffffffffffffffff
	qLimb3 = 0x0fffffffffffffff
)

var qWord = u256{qLimb0, qLimb1, qLimb2, qLimb3}

// ecMaskScalar clears the top 5 bits of a 256-bit buffer in place, keeping
// the low 251 bits. That leaves enough margin below q (252 bits) that any
// masked value is certainly less than q, making rejection-free key
// generation possible: it is only used to draw fresh secret keys
// (SeckeyGenerate) without a rejection loop. Scalars that reach
// ECMulGen/ECMul/ECSimul/ECSimulGen by other paths (an externally supplied
// secret key, a Schnorr response s reduced mod q) are not masked this way.
func ecMaskScalar(k *u256) {
	k[3] &= 0x07ffffffffffffff
}

// negModQ computes r = q - a (mod q) via a borrow-chain subtraction against
// the curve-order constant, mirroring the teacher's scalar.go negate.
func negModQ(r, a *u256) {
	var borrow uint64
	r[0], borrow = bits.Sub64(qLimb0, a[0], 0)
	r[1], borrow = bits.Sub64(qLimb1, a[1], borrow)
	r[2], borrow = bits.Sub64(qLimb2, a[2], borrow)
	r[3], _ = bits.Sub64(qLimb3, a[3], borrow)
}

// u256Bit returns bit i of a (0 or 1).
func u256Bit(a *u256, i int) uint64 {
	return (a[i>>6] >> uint(i&63)) & 1
}

// u256SetB32 sets r from a 32-byte big-endian encoding and masks it to the
// 251-bit range ecMaskScalar guarantees stays below q.
func u256SetB32(r *u256, b []byte) bool {
	if len(b) != 32 {
		return false
	}
	for i := 0; i < 4; i++ {
		r[i] = uint64(b[31-8*i]) | uint64(b[30-8*i])<<8 | uint64(b[29-8*i])<<16 | uint64(b[28-8*i])<<24 |
			uint64(b[27-8*i])<<32 | uint64(b[26-8*i])<<40 | uint64(b[25-8*i])<<48 | uint64(b[24-8*i])<<56
	}
	ecMaskScalar(r)
	return true
}

// u256GetB32 writes r's 32-byte big-endian encoding into b.
func u256GetB32(r *u256, b []byte) {
	for i := 0; i < 4; i++ {
		limb := r[i]
		b[31-8*i] = byte(limb)
		b[30-8*i] = byte(limb >> 8)
		b[29-8*i] = byte(limb >> 16)
		b[28-8*i] = byte(limb >> 24)
		b[27-8*i] = byte(limb >> 32)
		b[26-8*i] = byte(limb >> 40)
		b[25-8*i] = byte(limb >> 48)
		b[24-8*i] = byte(limb >> 56)
	}
}

// u256Less returns true if a < b, comparing as 256-bit unsigned integers.
func u256Less(a, b *u256) bool {
	for i := 3; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// u256IsZero returns true if a is zero.
func u256IsZero(a *u256) bool {
	return a[0] == 0 && a[1] == 0 && a[2] == 0 && a[3] == 0
}

// u256Clear zeroes a scalar via a byte-at-a-time volatile write.
func u256Clear(a *u256) {
	memclear(unsafe.Pointer(&a[0]), unsafe.Sizeof(*a))
}
