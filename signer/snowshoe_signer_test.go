package signer

import "testing"

func TestSignerGenerateSignVerify(t *testing.T) {
	s := NewSigner()
	if err := s.Generate(); err != nil {
		t.Fatal(err)
	}

	msg := make([]byte, 32)
	for i := range msg {
		msg[i] = byte(i)
	}

	sig, err := s.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	if len(sig) != 96 {
		t.Fatalf("signature should be 96 bytes, got %d", len(sig))
	}

	ok, err := s.Verify(msg, sig)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("a freshly produced signature should verify")
	}
}

func TestSignerInitSecMatchesGeneratedPub(t *testing.T) {
	gen := NewSigner()
	if err := gen.Generate(); err != nil {
		t.Fatal(err)
	}
	sec := gen.Sec()

	restored := NewSigner()
	if err := restored.InitSec(sec); err != nil {
		t.Fatal(err)
	}

	genPub := gen.Pub()
	restoredPub := restored.Pub()
	if len(genPub) != len(restoredPub) {
		t.Fatal("public key lengths should match")
	}
	for i := range genPub {
		if genPub[i] != restoredPub[i] {
			t.Fatal("restoring from the same secret key should reproduce the same public key")
		}
	}
}

func TestSignerInitPubVerifyOnly(t *testing.T) {
	full := NewSigner()
	if err := full.Generate(); err != nil {
		t.Fatal(err)
	}

	verifier := NewSigner()
	if err := verifier.InitPub(full.Pub()); err != nil {
		t.Fatal(err)
	}
	if verifier.Sec() != nil {
		t.Error("a verify-only signer should not report a secret key")
	}

	msg := make([]byte, 32)
	sig, err := full.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := verifier.Verify(msg, sig)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("verify-only signer should validate a signature from the matching key")
	}

	if _, err := verifier.Sign(msg); err == nil {
		t.Error("a verify-only signer should refuse to sign")
	}
}

func TestSignerZeroClearsSecret(t *testing.T) {
	s := NewSigner()
	if err := s.Generate(); err != nil {
		t.Fatal(err)
	}
	s.Zero()
	if s.Sec() != nil {
		t.Error("Zero should remove the held secret key")
	}
	if s.Pub() != nil {
		t.Error("Zero should remove the held public key")
	}
}

func TestSignerECDHAgreement(t *testing.T) {
	alice := NewSigner()
	bob := NewSigner()
	if err := alice.Generate(); err != nil {
		t.Fatal(err)
	}
	if err := bob.Generate(); err != nil {
		t.Fatal(err)
	}

	secretA, err := alice.ECDH(bob.Pub())
	if err != nil {
		t.Fatal(err)
	}
	secretB, err := bob.ECDH(alice.Pub())
	if err != nil {
		t.Fatal(err)
	}
	if len(secretA) != len(secretB) {
		t.Fatal("shared secret lengths should match")
	}
	for i := range secretA {
		if secretA[i] != secretB[i] {
			t.Fatal("both sides should derive the same shared secret")
		}
	}
}

func TestGenNegateChangesKeyPair(t *testing.T) {
	g := NewGen()
	pub1, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	g.Negate()
	_, pub2 := g.KeyPairBytes()

	if len(pub1) != len(pub2) {
		t.Fatal("public key lengths should match")
	}
	same := true
	for i := range pub1 {
		if pub1[i] != pub2[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("negating the key pair should change the public key")
	}
}
