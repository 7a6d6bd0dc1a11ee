package timex

import "testing"

func TestPeriodFromHz(t *testing.T) {
	if got := PeriodFromHz(440); got != 2_272_727 {
		t.Fatalf("440 Hz period = %d ns", got)
	}
	if got := PeriodFromHz(0); got != 1_000_000_000 {
		t.Fatalf("0 Hz period = %d ns", got)
	}
}
