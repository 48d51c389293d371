package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{UnknownPin, UnknownPin},
		{New(DuplicatePad, "validate", "pin 3"), DuplicatePad},
		{errors.New("boom"), Error},
	}
	for _, c := range cases {
		if got := Of(c.err); got != c.want {
			t.Fatalf("Of(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestE_ErrorAndIs(t *testing.T) {
	e := New(InvalidChannel, "validate", "pin 4 adc")
	if got := e.Error(); got != "validate: invalid_channel: pin 4 adc" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(e, InvalidChannel) {
		t.Fatal("errors.Is should match the wrapped code")
	}
	if errors.Is(e, DuplicatePad) {
		t.Fatal("errors.Is matched the wrong code")
	}

	cause := errors.New("cause")
	w := &E{C: Error, Err: cause}
	if !errors.Is(w, cause) {
		t.Fatal("Unwrap should expose the cause")
	}
	if w.Error() != "error" {
		t.Fatalf("bare Error() = %q", w.Error())
	}
}
