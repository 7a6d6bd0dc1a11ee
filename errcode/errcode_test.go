package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("nack")
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"bare code", PinInUse, PinInUse},
		{"wrapped", Wrap(DisplayIO, "display.flush", cause), DisplayIO},
		{"foreign", cause, Error},
	}
	for _, tc := range cases {
		if got := Of(tc.err); got != tc.want {
			t.Errorf("%s: Of() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestE_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("sm busy")
	err := Wrap(NoChannel, "matrix.open", cause)
	if got := err.Error(); got != "matrix.open: no_free_channel: sm busy" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}
	if Wrap(NoChannel, "x", nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
}
