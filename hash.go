package snowshoe

import (
	"crypto/sha256"
	"sync"

	sha256simd "github.com/minio/sha256-simd"
)

var (
	nonceTagHash     [32]byte
	challengeTagHash [32]byte
	tagHashInitOnce  sync.Once
)

func initTagHashes() {
	nonceTagHash = sha256.Sum256([]byte("snowshoe/nonce"))
	challengeTagHash = sha256.Sum256([]byte("snowshoe/challenge"))
}

func taggedHashPrefix(tag []byte) [32]byte {
	tagHashInitOnce.Do(initTagHashes)
	switch string(tag) {
	case "snowshoe/nonce":
		return nonceTagHash
	case "snowshoe/challenge":
		return challengeTagHash
	default:
		return sha256.Sum256(tag)
	}
}

// TaggedHash computes SHA256(SHA256(tag) || SHA256(tag) || data), the
// domain-separation construction BIP-340 popularized: reusing one hash
// function for unrelated purposes (nonce derivation, challenge computation)
// without a tag risks one use's output colliding with another's input.
func TaggedHash(tag []byte, data ...[]byte) [32]byte {
	prefix := taggedHashPrefix(tag)
	h := sha256simd.New()
	h.Write(prefix[:])
	h.Write(prefix[:])
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
