package model

import "testing"

func TestParseStatus(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Status
		ok   bool
	}{
		{"active", StatusActive, true},
		{"finished", StatusFinished, true},
		{"done", "", false},
		{"", "", false},
	} {
		got, err := ParseStatus(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseStatus(%q) = %q, %v", tc.in, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseStatus(%q) accepted", tc.in)
		}
	}
}

func TestStatusOther(t *testing.T) {
	if StatusActive.Other() != StatusFinished || StatusFinished.Other() != StatusActive {
		t.Fatalf("Other does not flip between the two columns")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" || seen[id] {
			t.Fatalf("id collision or empty id at iteration %d", i)
		}
		seen[id] = true
	}
}
