package core

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		cents   int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"500", 50000, false},
		{"12.345", 1234, false}, // third decimal rounds down
		{"12.346", 1235, false}, // third decimal rounds up
		{"0.5", 50, false},
		{".5", 50, false},
		{"", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
	}
	for _, tc := range cases {
		m, err := ParseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) = %v", tc.in, err)
			continue
		}
		if m.Cents != tc.cents {
			t.Errorf("ParseAmount(%q) = %d cents, want %d", tc.in, m.Cents, tc.cents)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{50000, "500.00"},
		{1234, "12.34"},
		{5, "0.05"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(Money{Cents: 50000})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "500.00" {
		t.Fatalf("marshal = %s, want 500.00", out)
	}

	var m Money
	if err := json.Unmarshal([]byte("123.45"), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Cents != 12345 {
		t.Fatalf("unmarshal = %d cents, want 12345", m.Cents)
	}

	// Zero is tolerated when loading stored data even though creation
	// rejects it.
	if err := json.Unmarshal([]byte("0"), &m); err != nil {
		t.Fatalf("unmarshal zero: %v", err)
	}
	if m.Cents != 0 {
		t.Fatalf("unmarshal zero = %d cents", m.Cents)
	}

	if err := json.Unmarshal([]byte(`"not a number"`), &m); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}
