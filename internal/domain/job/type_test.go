package job

import "testing"

func TestParseType_Known(t *testing.T) {
	for _, want := range Types() {
		got, err := ParseType(string(want))
		if err != nil {
			t.Fatalf("unexpected err for %q: %v", want, err)
		}
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestParseType_Unknown(t *testing.T) {
	for _, raw := range []string{"", "freelance", "Full-Time", "full time"} {
		if _, err := ParseType(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestTypeValid(t *testing.T) {
	if !TypeContract.Valid() {
		t.Fatalf("expected contract to be valid")
	}
	if Type("gig").Valid() {
		t.Fatalf("expected gig to be invalid")
	}
}
