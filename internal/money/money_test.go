package money

import "testing"

func TestRoundHalfToEven(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2.225", "2.22"},
		{"2.235", "2.24"},
		{"3.333", "3.33"},
		{"1.005", "1"},
		{"16.60", "16.6"},
	}
	for _, tc := range cases {
		got := Round(MustFromString(tc.in))
		if got.String() != tc.want {
			t.Fatalf("Round(%s) = %s, want %s", tc.in, got.String(), tc.want)
		}
	}
}
