package conv

import (
	"math"
	"strconv"
	"testing"
)

func TestItoa(t *testing.T) {
	for _, n := range []int64{0, 7, -7, 26, 1 << 40, math.MaxInt64, math.MinInt64} {
		if got, want := Itoa(n), strconv.FormatInt(n, 10); got != want {
			t.Errorf("Itoa(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestUtoa(t *testing.T) {
	for _, n := range []uint64{0, 9, 10, 48_000_000, math.MaxUint64} {
		if got, want := Utoa(n), strconv.FormatUint(n, 10); got != want {
			t.Errorf("Utoa(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestAppend(t *testing.T) {
	b := AppendUint([]byte("pin "), 3)
	b = AppendInt(append(b, ' '), -1)
	if string(b) != "pin 3 -1" {
		t.Fatalf("got %q", b)
	}
}
