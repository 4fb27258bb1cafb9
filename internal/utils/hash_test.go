package utils

import (
	"encoding/hex"
	"testing"
)

func TestHashString_Deterministic(t *testing.T) {
	first := HashString("abc1234567", "test-key")
	second := HashString("abc1234567", "test-key")

	if first != second {
		t.Errorf("expected identical digests, got %q and %q", first, second)
	}
}

func TestHashString_DiffersPerInput(t *testing.T) {
	base := HashString("abc1234567", "test-key")
	other := HashString("abc1234567x", "test-key")

	if base == other {
		t.Error("expected different digests for different inputs")
	}
}

func TestHashString_DiffersPerKey(t *testing.T) {
	first := HashString("abc1234567", "key-one")
	second := HashString("abc1234567", "key-two")

	if first == second {
		t.Error("expected different digests for different keys")
	}
}

func TestHashString_HexEncoded(t *testing.T) {
	digest := HashString("payload", "key")

	if _, err := hex.DecodeString(digest); err != nil {
		t.Errorf("expected hex-encoded digest, got %q: %v", digest, err)
	}
	// HMAC-SHA256 digest is 32 bytes, 64 hex characters.
	if len(digest) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(digest))
	}
}
