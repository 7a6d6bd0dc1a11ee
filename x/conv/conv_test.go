package conv

import (
	"math"
	"testing"
)

func TestAppendInt(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-42, "-42"},
		{6100, "6100"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, c := range cases {
		if got := string(AppendInt(nil, c.n)); got != c.want {
			t.Errorf("AppendInt(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestAppendUint_Appends(t *testing.T) {
	got := string(AppendUint([]byte("hold="), 1500))
	if got != "hold=1500" {
		t.Fatalf("got %q", got)
	}
}

func TestAppendHex32(t *testing.T) {
	if got := string(AppendHex32(nil, 0x3C)); got != "0000003C" {
		t.Fatalf("got %q", got)
	}
	if got := string(AppendHex32(nil, 0xDEADBEEF)); got != "DEADBEEF" {
		t.Fatalf("got %q", got)
	}
}

func TestItoaAndBool(t *testing.T) {
	if Itoa(-5) != "-5" || Itoa(17) != "17" {
		t.Fatal("Itoa")
	}
	if string(AppendBool(nil, true)) != "true" || string(AppendBool(nil, false)) != "false" {
		t.Fatal("AppendBool")
	}
}
