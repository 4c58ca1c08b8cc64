package crypto

import (
	"strings"
	"testing"
)

func TestFingerprint(t *testing.T) {
	key := []byte("fingerprint-key")

	a := Fingerprint(key, "203.0.113.7")
	if len(a) != 64 {
		t.Fatalf("Fingerprint() length = %d, want 64 hex chars", len(a))
	}
	if a != Fingerprint(key, "203.0.113.7") {
		t.Error("Fingerprint() is not deterministic for the same key and address")
	}
	if a == Fingerprint(key, "203.0.113.8") {
		t.Error("Fingerprint() collided for different addresses")
	}
	if a == Fingerprint([]byte("other-key"), "203.0.113.7") {
		t.Error("Fingerprint() ignored the key")
	}
	if strings.Contains(a, "203.0.113.7") {
		t.Error("Fingerprint() leaked the raw address")
	}
}

func TestFingerprintLongKey(t *testing.T) {
	key := []byte(strings.Repeat("k", 200))
	if got := Fingerprint(key, "198.51.100.1"); len(got) != 64 {
		t.Errorf("Fingerprint() length = %d, want 64", len(got))
	}
}
