package snowshoe

import "math/big"

// u256MulModQ computes r = a*b mod q. Signing scalar arithmetic is ordinary
// setup math operating on a freshly derived nonce, not a value whose
// intermediate states need to be branch-free, so this runs on math/big the
// same way glsDecompose does.
func u256MulModQ(r, a, b *u256) {
	ab := new(big.Int).Mul(u256ToBig(a), u256ToBig(b))
	ab.Mod(ab, qBig)
	*r = bigToU256(ab)
}

// u256AddModQ computes r = a+b mod q.
func u256AddModQ(r, a, b *u256) {
	sum := new(big.Int).Add(u256ToBig(a), u256ToBig(b))
	sum.Mod(sum, qBig)
	*r = bigToU256(sum)
}

// u256SubModQ computes r = a-b mod q.
func u256SubModQ(r, a, b *u256) {
	diff := new(big.Int).Sub(u256ToBig(a), u256ToBig(b))
	diff.Mod(diff, qBig)
	*r = bigToU256(diff)
}
