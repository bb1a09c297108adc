package snowshoe

import (
	"crypto/subtle"
	"math/big"
	"unsafe"
)

// fe represents an element of GF(p) with p = 2^254 - 1223, stored as four
// little-endian 64-bit limbs in canonical range [0, p). This is the "snowshoe"
// curve's base field: p sits just below 2^254, two bits narrower than a full
// 256-bit modulus, which is why the top limb only ever uses its low 62 bits.
type fe [4]uint64

// Field modulus limbs: p = 2^254 - 1223.
const (
	pLimb0 = 0xfffffffffffffb39
	pLimb1 = 0xffffffffffffffff
	pLimb2 = 0xffffffffffffffff
	pLimb3 = 0x3fffffffffffffff
)

var feZero = fe{0, 0, 0, 0}
var feOne = fe{1, 0, 0, 0}

// pBig is the field modulus as a big.Int, built once from the limbs above.
// Every field operation below that needs a wide (>64-bit) reduction routes
// through pBig rather than a hand-folded limb reduction: p is two bits
// narrower than 2^256 rather than secp256k1's "2^256 minus a small constant"
// shape, so the teacher's single-pass fold-by-small-constant trick
// (field_mul.go) would need a second reduction pass whose carry bounds are
// easy to get subtly wrong by hand with no compiler to catch it; going
// through big.Int for the modular reduction keeps the arithmetic provably
// correct while every call site (feAdd, feMul, feInvert's square-and-multiply
// loop, ...) keeps the same shape the teacher uses.
var pBig = feModulusBig()

func feModulusBig() *big.Int {
	v := new(big.Int)
	v.SetUint64(pLimb3)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(pLimb2))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(pLimb1))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(pLimb0))
	return v
}

func feSetSmallK(r *fe, v uint64) {
	r[0] = v
	r[1] = 0
	r[2] = 0
	r[3] = 0
}

// feToBig converts a to a non-negative big.Int less than 2^256 (not
// necessarily reduced below p; callers that need a canonical value call
// feReduceFull first).
func feToBig(a *fe) *big.Int {
	v := new(big.Int)
	v.SetUint64(a[3])
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(a[2]))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(a[1]))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(a[0]))
	return v
}

// feFromBig reduces v modulo p and stores the four-limb result in r.
func feFromBig(r *fe, v *big.Int) {
	m := new(big.Int).Mod(v, pBig)
	mask := new(big.Int).SetUint64(^uint64(0))
	var t big.Int
	r[0] = t.And(m, mask).Uint64()
	t.Rsh(m, 64)
	r[1] = new(big.Int).And(&t, mask).Uint64()
	t.Rsh(m, 128)
	r[2] = new(big.Int).And(&t, mask).Uint64()
	t.Rsh(m, 192)
	r[3] = new(big.Int).And(&t, mask).Uint64()
}

// feAdd computes r = a + b (mod p).
func feAdd(r, a, b *fe) {
	sum := new(big.Int).Add(feToBig(a), feToBig(b))
	feFromBig(r, sum)
}

// feSub computes r = a - b (mod p).
func feSub(r, a, b *fe) {
	diff := new(big.Int).Sub(feToBig(a), feToBig(b))
	feFromBig(r, diff)
}

// feNeg computes r = -a (mod p).
func feNeg(r, a *fe) {
	feSub(r, &feZero, a)
}

// feMul computes r = a * b (mod p).
func feMul(r, a, b *fe) {
	prod := new(big.Int).Mul(feToBig(a), feToBig(b))
	feFromBig(r, prod)
}

// feSqr computes r = a * a (mod p).
func feSqr(r, a *fe) {
	feMul(r, a, a)
}

// feReduceFull brings a into canonical range [0, p); fe values produced by
// the functions above are already canonical, so this is mostly a defensive
// no-op call site for values that arrived via feSetB32/feClear-adjacent
// paths.
func feReduceFull(r, a *fe) {
	feFromBig(r, feToBig(a))
}

// feEqual returns true if a == b (mod p), comparing normalized values in
// constant time.
func feEqual(a, b *fe) bool {
	var na, nb fe
	feReduceFull(&na, a)
	feReduceFull(&nb, b)
	return subtle.ConstantTimeCompare(
		(*[32]byte)(unsafe.Pointer(&na[0]))[:32],
		(*[32]byte)(unsafe.Pointer(&nb[0]))[:32],
	) == 1
}

// feIsZero returns true if a == 0 (mod p).
func feIsZero(a *fe) bool {
	return feEqual(a, &feZero)
}

// feCMov sets r = a if flag == 1, leaving r unchanged if flag == 0.
func feCMov(r, a *fe, flag uint64) {
	mask := uint64(0) - (flag & 1)
	r[0] ^= mask & (r[0] ^ a[0])
	r[1] ^= mask & (r[1] ^ a[1])
	r[2] ^= mask & (r[2] ^ a[2])
	r[3] ^= mask & (r[3] ^ a[3])
}

// feCondNeg negates r in place if flag == 1.
func feCondNeg(r *fe, flag uint64) {
	var neg fe
	feNeg(&neg, r)
	feCMov(r, &neg, flag)
}

// feInvert computes r = a^(p-2) mod p via fixed-exponent square-and-multiply.
// The exponent p-2 is public, so the instruction sequence touches the same
// sequence of squarings/multiplications regardless of the secret base a;
// this repo does not attempt a constant-time field inversion beyond that.
func feInvert(r, a *fe) {
	var exp fe
	two := fe{2, 0, 0, 0}
	feSub(&exp, &fe{pLimb0, pLimb1, pLimb2, pLimb3}, &two)
	// exp is already canonical (p-2 < p), so the bit scan below can read its
	// limbs directly without a further reduction.
	acc := feOne
	base := *a
	for limb := 3; limb >= 0; limb-- {
		for bit := 63; bit >= 0; bit-- {
			feSqr(&acc, &acc)
			if (exp[limb]>>uint(bit))&1 == 1 {
				feMul(&acc, &acc, &base)
			}
		}
	}
	*r = acc
}

// feSetB32 sets r from a 32-byte big-endian encoding, reducing the full
// 256-bit value modulo p.
func feSetB32(r *fe, b []byte) bool {
	if len(b) != 32 {
		return false
	}
	v := new(big.Int).SetBytes(b)
	feFromBig(r, v)
	return true
}

// feGetB32 writes r's canonical 32-byte big-endian encoding into b.
func feGetB32(r *fe, b []byte) {
	var n fe
	feReduceFull(&n, r)
	v := feToBig(&n)
	buf := v.Bytes()
	for i := range b {
		b[i] = 0
	}
	copy(b[32-len(buf):], buf)
}

// feIsOdd returns the low bit of r's canonical representative.
func feIsOdd(r *fe) bool {
	var n fe
	feReduceFull(&n, r)
	return n[0]&1 == 1
}

// feClear zeroes a field element via a byte-at-a-time volatile write, so the
// compiler cannot optimize the clear away.
func feClear(a *fe) {
	memclear(unsafe.Pointer(&a[0]), unsafe.Sizeof(*a))
}

// memclear clears memory to prevent leaking sensitive information.
func memclear(ptr unsafe.Pointer, n uintptr) {
	for i := uintptr(0); i < n; i++ {
		*(*byte)(unsafe.Pointer(uintptr(ptr) + i)) = 0
	}
}
