package snowshoe

// ecMulGenLadder computes k*G for the curve's fixed base point, via the
// Booth-recoded two-row w=7 comb (ec_mul_gen/ec_table_select_comb):
// the scalar is first recoded so its bottom digit's sign is forced and
// every later digit reads straight off the recoded buffer, then the
// eighteen comb columns are walked top-down, doubling the accumulator
// once per column and adding in both rows' selected points. GEN_FIX
// corrects for the recoding's Booth carry running past the top digit,
// and the recoded buffer's own sign bit undoes the negation the
// recoding applied up front to force that bottom digit.
func ecMulGenLadder(k *u256, mulCofactor bool) ecpt {
	kp, lsb := ecRecodeScalarComb(k)

	p1, p2 := ecTableSelectComb(&kp, combColumns2-1)
	var P1, P2, acc ecpt
	ecExpand(&p1, &P1)
	ecExpand(&p2, &P2)
	ecAdd(&acc, &P1, &P2, true, true)

	for ii := combColumns2 - 2; ii >= 0; ii-- {
		ecDbl(&acc, &acc)
		q1, q2 := ecTableSelectComb(&kp, ii)
		var Q1, Q2 ecpt
		ecExpand(&q1, &Q1)
		ecExpand(&q2, &Q2)
		ecAdd(&acc, &acc, &Q1, false, true)
		ecAdd(&acc, &acc, &Q2, false, true)
	}

	carry := (kp[3] >> 60) & 1
	var fixed ecpt
	ecExpand(&genFix, &fixed)
	ecCondAdd(&acc, &acc, &fixed, carry, true)

	ecCondNeg(&acc, lsb)

	if mulCofactor {
		ecDbl(&acc, &acc)
		ecDbl(&acc, &acc)
	}

	return acc
}

// ECMulGen computes k*G for the curve's fixed base point. mulCofactor
// multiplies the result by the curve's cofactor 4, landing it in the full
// group rather than the prime-order subgroup the comb targets; callers
// that already know k is reduced mod the prime subgroup order (key
// generation, Schnorr's nonce commitment) pass false.
func ECMulGen(r *ecptAffine, k *u256, mulCofactor bool) {
	acc := ecMulGenLadder(k, mulCofactor)
	ecAffine(&acc, r)
}
