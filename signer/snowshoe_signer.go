package signer

import (
	"errors"

	"snowshoe.mleku.dev"
)

// Signer implements the I and Gen interfaces using the snowshoe package.
type Signer struct {
	keypair   *snowshoe.KeyPair
	pubkey    *snowshoe.PublicKey
	hasSecret bool
}

// NewSigner creates a new Signer instance.
func NewSigner() *Signer {
	return &Signer{}
}

// Generate creates a fresh key pair from system entropy.
func (s *Signer) Generate() error {
	kp, err := snowshoe.KeyPairGenerate()
	if err != nil {
		return err
	}
	s.keypair = kp
	s.pubkey = kp.Pubkey()
	s.hasSecret = true
	return nil
}

// InitSec initializes the signing key from raw bytes and derives the public key.
func (s *Signer) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return errors.New("secret key must be 32 bytes")
	}
	kp, err := snowshoe.KeyPairCreate(sec)
	if err != nil {
		return err
	}
	s.keypair = kp
	s.pubkey = kp.Pubkey()
	s.hasSecret = true
	return nil
}

// InitPub initializes the verification key from a 64-byte uncompressed public key.
func (s *Signer) InitPub(pub []byte) error {
	if len(pub) != 64 {
		return errors.New("public key must be 64 bytes")
	}
	var p snowshoe.PublicKey
	if err := snowshoe.PubkeyParse(&p, pub); err != nil {
		return err
	}
	s.pubkey = &p
	s.keypair = nil
	s.hasSecret = false
	return nil
}

// Sec returns the secret key bytes, or nil if none is held.
func (s *Signer) Sec() []byte {
	if !s.hasSecret || s.keypair == nil {
		return nil
	}
	return s.keypair.Seckey()
}

// Pub returns the 64-byte uncompressed public key, or nil if none is held.
func (s *Signer) Pub() []byte {
	if s.pubkey == nil {
		return nil
	}
	out := make([]byte, 64)
	copy(out, s.pubkey[:])
	return out
}

// Sign produces a 96-byte signature over a 32-byte message digest.
func (s *Signer) Sign(msg []byte) (sig []byte, err error) {
	if !s.hasSecret || s.keypair == nil {
		return nil, errors.New("no secret key available for signing")
	}
	if len(msg) != 32 {
		return nil, errors.New("message must be 32 bytes")
	}
	var sig96 [96]byte
	if err := snowshoe.SchnorrSign(sig96[:], msg, s.keypair); err != nil {
		return nil, err
	}
	return sig96[:], nil
}

// Verify checks a message digest and signature against the stored public key.
func (s *Signer) Verify(msg, sig []byte) (valid bool, err error) {
	if s.pubkey == nil {
		return false, errors.New("no public key available for verification")
	}
	if len(msg) != 32 {
		return false, errors.New("message must be 32 bytes")
	}
	if len(sig) != 96 {
		return false, errors.New("signature must be 96 bytes")
	}
	return snowshoe.SchnorrVerify(sig, msg, s.pubkey)
}

// Zero wipes the secret key.
func (s *Signer) Zero() {
	if s.keypair != nil {
		s.keypair.Clear()
		s.keypair = nil
	}
	s.hasSecret = false
	s.pubkey = nil
}

// ECDH returns a shared secret derived from the stored secret key and peer's public key.
func (s *Signer) ECDH(pub []byte) (secret []byte, err error) {
	if !s.hasSecret || s.keypair == nil {
		return nil, errors.New("no secret key available for ECDH")
	}
	if len(pub) != 64 {
		return nil, errors.New("public key must be 64 bytes")
	}
	var peer snowshoe.PublicKey
	if err := snowshoe.PubkeyParse(&peer, pub); err != nil {
		return nil, err
	}
	out := make([]byte, 32)
	if err := snowshoe.ECDH(out, s.keypair, &peer); err != nil {
		return nil, err
	}
	return out, nil
}

// SnowshoeGen implements the Gen interface for key generation and matching.
type SnowshoeGen struct {
	keypair *snowshoe.KeyPair
}

// NewGen creates a new SnowshoeGen instance.
func NewGen() *SnowshoeGen {
	return &SnowshoeGen{}
}

// Generate gathers entropy and returns the 64-byte uncompressed public key.
func (g *SnowshoeGen) Generate() (pubBytes []byte, err error) {
	kp, err := snowshoe.KeyPairGenerate()
	if err != nil {
		return nil, err
	}
	g.keypair = kp
	pub := kp.Pubkey()
	out := make([]byte, 64)
	copy(out, pub[:])
	return out, nil
}

// Negate flips the key pair's secret key and recomputes the public key.
func (g *SnowshoeGen) Negate() {
	if g.keypair == nil {
		return
	}
	seckey := g.keypair.Seckey()
	if !snowshoe.SeckeyNegate(seckey) {
		return
	}
	kp, err := snowshoe.KeyPairCreate(seckey)
	if err != nil {
		return
	}
	g.keypair = kp
}

// KeyPairBytes returns the raw secret key and the 64-byte uncompressed public key.
func (g *SnowshoeGen) KeyPairBytes() (secBytes, pubBytes []byte) {
	if g.keypair == nil {
		return nil, nil
	}
	secBytes = g.keypair.Seckey()
	pub := g.keypair.Pubkey()
	pubBytes = make([]byte, 64)
	copy(pubBytes, pub[:])
	return secBytes, pubBytes
}
