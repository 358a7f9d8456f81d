package score

import (
	"testing"

	"github.com/matryer/is"
)

func TestReconcile(t *testing.T) {
	is := is.New(t)
	is.Equal(Reconcile(120, 80), 120)
	is.Equal(Reconcile(50, 80), 80)
	is.Equal(Reconcile(80, 80), 80)
	is.Equal(Reconcile(0, 0), 0)
}

func TestStarsFor(t *testing.T) {
	cases := []struct {
		wrong, max, want int
	}{
		{0, 5, 3},
		{1, 5, 2}, // 0.8 is not above 0.8
		{2, 5, 2}, // 0.6
		{3, 5, 1}, // 0.4
		{5, 5, 1},
		{0, 3, 3},
		{1, 3, 2}, // 0.67
		{2, 3, 1}, // 0.33
		{3, 3, 1},
		{5, 10, 1}, // 0.5 is not above 0.5
		{4, 10, 2},
		{0, 1, 3},
		{1, 1, 1},
		{0, 0, 1},
	}
	for _, c := range cases {
		if got := StarsFor(c.wrong, c.max); got != c.want {
			t.Errorf("StarsFor(%d, %d) = %d, want %d", c.wrong, c.max, got, c.want)
		}
	}
}
