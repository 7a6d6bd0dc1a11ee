package hal

import (
	"errors"
	"image/color"
	"testing"

	"pedsignal-go/errcode"
)

func TestClaimFirst_FallsBackToSecondBlock(t *testing.T) {
	var tried []int
	claim := func(block int, ok bool) func() (int, error) {
		return func() (int, error) {
			tried = append(tried, block)
			if !ok {
				return 0, errors.New("all state machines claimed")
			}
			return block, nil
		}
	}

	got, err := claimFirst("matrix.claim", claim(0, false), claim(1, true))
	if err != nil {
		t.Fatalf("claimFirst: %v", err)
	}
	if got != 1 || len(tried) != 2 {
		t.Fatalf("got block %d after %v, want block 1 after [0 1]", got, tried)
	}
}

func TestClaimFirst_NoFreeChannel(t *testing.T) {
	busy := errors.New("all state machines claimed")
	none := func() (int, error) { return 0, busy }

	_, err := claimFirst("matrix.claim", none, none)
	if errcode.Of(err) != errcode.NoChannel {
		t.Fatalf("err = %v, want no_free_channel", err)
	}
	if !errors.Is(err, busy) {
		t.Fatalf("err = %v, want the claim cause kept", err)
	}
}

func TestPackGRB(t *testing.T) {
	frame := []color.RGBA{{R: 0x11, G: 0x22, B: 0x33}, {}}
	raw := packGRB(nil, frame)
	if len(raw) != 2 || raw[0] != 0x22113300 || raw[1] != 0 {
		t.Fatalf("packGRB = %#x", raw)
	}

	again := packGRB(raw, frame[:1])
	if &again[0] != &raw[0] {
		t.Fatal("packGRB did not reuse the buffer")
	}
}
