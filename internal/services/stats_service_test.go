package services

import "testing"

func TestPayRate(t *testing.T) {
	cases := []struct {
		paid, total int64
		want        int
	}{
		{0, 0, 0},
		{3, 10, 30},
		{1, 3, 33},
		{2, 3, 67},
		{10, 10, 100},
	}
	for _, c := range cases {
		if got := PayRate(c.paid, c.total); got != c.want {
			t.Fatalf("PayRate(%d, %d) = %d, want %d", c.paid, c.total, got, c.want)
		}
	}
}
