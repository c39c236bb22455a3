package internal

import "testing"

func TestResolveIDRoundTrip(t *testing.T) {
	id, err := NewResolveID()
	if err != nil {
		t.Fatalf("NewResolveID failed: %v", err)
	}

	encoded := id.String()
	if len(encoded) != 22 {
		t.Fatalf("expected 22-char encoding, got %d (%q)", len(encoded), encoded)
	}

	parsed, err := ParseResolveID(encoded)
	if err != nil {
		t.Fatalf("ParseResolveID failed: %v", err)
	}
	if parsed != id {
		t.Fatalf("round trip mismatch: %v != %v", parsed, id)
	}
}

func TestResolveIDsAreUnique(t *testing.T) {
	seen := make(map[ResolveID]bool, 64)
	for i := 0; i < 64; i++ {
		id, err := NewResolveID()
		if err != nil {
			t.Fatalf("NewResolveID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate resolve id after %d draws", i)
		}
		seen[id] = true
	}
}

func TestParseResolveIDRejections(t *testing.T) {
	if _, err := ParseResolveID("not base64url!!"); err == nil {
		t.Fatal("expected error for invalid encoding")
	}
	if _, err := ParseResolveID("AAAA"); err == nil {
		t.Fatal("expected error for wrong size")
	}
}
