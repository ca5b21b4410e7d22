package middleware

import (
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	valid := []string{
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"0123456789abcdef0123456789abcdef",
		"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d",
		"A1B2C3D4-E5F6-4A7B-8C9D-0E1F2A3B4C5D", // case-folded before matching
	}
	for _, id := range valid {
		if !validReqID(id) {
			t.Errorf("%q should be accepted", id)
		}
	}
	invalid := []string{
		"",
		"short",
		"not-a-uuid-at-all",
		"gggggggggggggggggggggggggggggggg",
	}
	for _, id := range invalid {
		if validReqID(id) {
			t.Errorf("%q should be rejected", id)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	// epoch seconds
	got, err := parseRequestAt("1736123456")
	if err != nil {
		t.Fatalf("epoch seconds: %v", err)
	}
	if got.Unix() != 1736123456 {
		t.Fatalf("epoch seconds: %v", got)
	}

	// epoch milliseconds
	got, err = parseRequestAt("1736123456789")
	if err != nil {
		t.Fatalf("epoch millis: %v", err)
	}
	if got.UnixMilli() != 1736123456789 {
		t.Fatalf("epoch millis: %v", got)
	}

	// RFC3339 with zone, normalized to UTC
	got, err = parseRequestAt("2026-08-30T10:00:00+07:00")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if got.Location() != time.UTC || got.Hour() != 3 {
		t.Fatalf("rfc3339 not normalized: %v", got)
	}

	for _, bad := range []string{"", "2026-08-30 10:00:00", "yesterday"} {
		if _, err := parseRequestAt(bad); err == nil {
			t.Errorf("%q should be rejected", bad)
		}
	}
}

func TestBuildKey(t *testing.T) {
	key := buildKey("POST", "/api/loans/apply", "u-1", "req-1")
	want := "idemp:post:/api/loans/apply:u-1:req-1"
	if key != want {
		t.Fatalf("key = %q, want %q", key, want)
	}
}

func TestBodyHashStable(t *testing.T) {
	a := bodyHash([]byte(`{"x":1}`))
	b := bodyHash([]byte(`{"x":1}`))
	c := bodyHash([]byte(`{"x":2}`))
	if a != b {
		t.Error("same body must hash equal")
	}
	if a == c {
		t.Error("different bodies must hash different")
	}
}
