package snowshoe

import "math/big"

// glsLambda is the GLS endomorphism eigenvalue mod q, satisfying
// lambda^2 ≡ -1 (mod q). Found by Tonelli-Shanks on -1 mod q, since q ≡ 1
// (mod 4) guarantees -1 is a quadratic residue.
var glsLambda = bigFromHex("b9415d7855ab36264f62985cc913f1ee74e43d57fc560b955aa73564b2d5ec7")

// qBig is q as a big.Int, parsed once from its hex form.
var qBig = bigFromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff71")

// glsBasis holds the short lattice basis vectors v1=(a1,-a2), v2=(a2,a1)
// for the lattice {(x,y) : x + lambda*y ≡ 0 (mod q)}, found via the
// Gaussian-integer Euclidean algorithm on (q, lambda), stopping at the
// first remainder below sqrt(q) — the same shape as the teacher's
// scalarSplitLambda/mulShiftVar, generalized from secp256k1's cube-root
// endomorphism to this curve's lambda^2 ≡ -1 case. Because lambda^2 ≡ -1,
// a1 and a2 land on a sum-of-two-squares decomposition of q itself
// (a1^2 + a2^2 == q), which is what gives v1/v2 their right-angle shape.
var (
	glsBasisA1 = bigFromHex("3a91eb2cf53dba12093d290904a9c9e7")
	glsBasisA2 = bigFromHex("19cc61bfb379b8a73be33728287fd990")
)

func bigFromHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("snowshoe: invalid embedded constant " + s)
	}
	return n
}

// glsMorph applies the curve's order-4 automorphism to an affine point.
//
// The real snowshoe endomorphism is a single field multiplication over the
// curve's quadratic twist; that twist constant lives in the part of the
// original library this module could not recover (see DESIGN.md). This
// implementation computes the same map by direct scalar multiplication by
// glsLambda, which satisfies the defining property (phi(P) = lambda*P)
// exactly, at the cost of the one-multiplication speed the real
// endomorphism is chosen for.
func glsMorph(p *ecptAffine) ecptAffine {
	var k u256
	lambdaToU256(&k)
	var acc ecpt
	ecZero(&acc)
	var base ecpt
	ecExpand(p, &base)
	for i := 255; i >= 0; i-- {
		ecDbl(&acc, &acc)
		if u256Bit(&k, i) == 1 {
			ecAdd(&acc, &acc, &base, false, true)
		}
	}
	var out ecptAffine
	ecAffine(&acc, &out)
	return out
}

func lambdaToU256(k *u256) {
	b := glsLambda.Bytes()
	var buf [32]byte
	copy(buf[32-len(b):], b)
	for i := 0; i < 4; i++ {
		k[i] = 0
		for j := 0; j < 8; j++ {
			k[i] |= uint64(buf[31-(i*8+j)]) << uint(8*j)
		}
	}
}

// glsDecompose splits a scalar k (0 <= k < q) into two subscalars a0, a1,
// each at most 128 bits in magnitude with an accompanying sign, such that
// a0 + lambda*a1 ≡ k (mod q). Uses Babai rounding against the short lattice
// basis above.
//
// This runs on math/big rather than the teacher's hand-rolled fixed-width
// mulShiftVar: the inputs here are scalars about to be recoded by the
// genuinely constant-time GLV-SAC recoder (recode.go), and the upstream
// ecmul.cpp itself treats gls_decompose as ordinary setup arithmetic with no
// constant-time obligation of its own.
func glsDecompose(k *u256) (a0 u256, a0Sign uint64, a1 u256, a1Sign uint64) {
	kb := u256ToBig(k)

	c1 := roundDiv(new(big.Int).Mul(glsBasisA1, kb), qBig)
	c2 := roundDiv(new(big.Int).Mul(glsBasisA2, kb), qBig)

	// a0 = k - c1*a1 - c2*a2
	t0 := new(big.Int).Sub(kb, new(big.Int).Mul(c1, glsBasisA1))
	t0.Sub(t0, new(big.Int).Mul(c2, glsBasisA2))

	// a1 = c1*a2 - c2*a1
	t1 := new(big.Int).Sub(new(big.Int).Mul(c1, glsBasisA2), new(big.Int).Mul(c2, glsBasisA1))

	a0Sign = 0
	if t0.Sign() < 0 {
		a0Sign = 1
		t0.Neg(t0)
	}
	a1Sign = 0
	if t1.Sign() < 0 {
		a1Sign = 1
		t1.Neg(t1)
	}

	a0 = bigToU256(t0)
	a1 = bigToU256(t1)
	return
}

// roundDiv computes round(num/den) to nearest, ties away from zero.
func roundDiv(num, den *big.Int) *big.Int {
	neg := (num.Sign() < 0) != (den.Sign() < 0)
	n := new(big.Int).Abs(num)
	d := new(big.Int).Abs(den)
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	r.Lsh(r, 1)
	if r.Cmp(d) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if neg {
		q.Neg(q)
	}
	return q
}

func u256ToBig(a *u256) *big.Int {
	var buf [32]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			buf[31-(i*8+j)] = byte(a[i] >> uint(8*j))
		}
	}
	return new(big.Int).SetBytes(buf[:])
}

func bigToU256(n *big.Int) u256 {
	b := n.Bytes()
	var buf [32]byte
	copy(buf[32-len(b):], b)
	var r u256
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			r[i] |= uint64(buf[31-(i*8+j)]) << uint(8*j)
		}
	}
	return r
}
