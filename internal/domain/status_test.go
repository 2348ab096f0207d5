package domain

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusUpcoming, StatusActive, StatusClosed} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	if ValidStatus("cancelled") {
		t.Error("ValidStatus(\"cancelled\") = true")
	}
}

func TestCanTransitionStatus(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusUpcoming, StatusActive, true},
		{StatusActive, StatusClosed, true},
		{StatusUpcoming, StatusClosed, true},
		{StatusActive, StatusActive, true},
		{StatusActive, StatusUpcoming, false},
		{StatusClosed, StatusActive, false},
		{StatusClosed, StatusUpcoming, false},
		{"bogus", StatusActive, false},
		{StatusActive, "bogus", false},
	}
	for _, tc := range cases {
		if got := CanTransitionStatus(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionStatus(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
