package wavefront

import (
	"errors"
	"testing"
)

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in   string
		want float32
		n    int
	}{
		{"1.0", 1, 3},
		{"-2.5 3", -2.5, 4},
		{"+0.25", 0.25, 5},
		{"  7", 7, 3},
		{"\t.5", 0.5, 3},
		{"5.", 5, 2},
		{"1e3", 1000, 3},
		{"2.5E-1x", 0.25, 6},
		{"3e", 3, 1},
		{"4e+", 4, 1},
		{"12abc", 12, 2},
		{"-0", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, n, err := ParseScalar([]byte(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want || n != tt.n {
				t.Errorf("got (%v, %d), want (%v, %d)", got, n, tt.want, tt.n)
			}
		})
	}
}

func TestParseScalarMalformed(t *testing.T) {
	for _, in := range []string{"", " ", "abc", "-", "+.", ".", "e5", "\n", "1e39"} {
		if _, _, err := ParseScalar([]byte(in)); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("%q: expected ErrMalformedNumber, got %v", in, err)
		}
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
		n    int
	}{
		{"1", 1, 1},
		{"42/7", 42, 2},
		{"-3", -3, 2},
		{"+8 ", 8, 2},
	}
	for _, tt := range tests {
		got, n, err := ParseIndex([]byte(tt.in))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.in, err)
		}
		if got != tt.want || n != tt.n {
			t.Errorf("%q: got (%d, %d), want (%d, %d)", tt.in, got, n, tt.want, tt.n)
		}
	}

	for _, in := range []string{"", "/", " 1", "-", "x1"} {
		if _, _, err := ParseIndex([]byte(in)); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("%q: expected ErrMalformedNumber, got %v", in, err)
		}
	}
}
