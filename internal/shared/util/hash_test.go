package util

import "testing"

func TestKeyFingerprint(t *testing.T) {
	key := "sk-test-12345"
	got := KeyFingerprint(key)
	if got != KeyFingerprint(key) {
		t.Fatalf("expected stable fingerprint, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("fingerprint contains non-hex character: %c", ch)
		}
	}
	if len(got) != 12 {
		t.Fatalf("expected 12 hex characters, got %d", len(got))
	}
	if KeyFingerprint("") != "" {
		t.Fatalf("expected empty fingerprint for empty key")
	}
}
