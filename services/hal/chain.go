package hal

import (
	"image/color"

	"pedsignal-go/errcode"
)

// claimFirst returns the result of the first claim that succeeds. If every
// claim fails it returns NoChannel wrapping the last cause.
func claimFirst[T any](op string, claims ...func() (T, error)) (T, error) {
	var (
		zero T
		err  error
	)
	for _, claim := range claims {
		v, cerr := claim()
		if cerr == nil {
			return v, nil
		}
		err = cerr
	}
	if err == nil {
		return zero, &errcode.E{C: errcode.NoChannel, Op: op}
	}
	return zero, errcode.Wrap(errcode.NoChannel, op, err)
}

// packGRB converts a frame to WS2812 words (green, red, blue from the top
// byte down), reusing dst when it is large enough.
func packGRB(dst []uint32, frame []color.RGBA) []uint32 {
	if cap(dst) < len(frame) {
		dst = make([]uint32, len(frame))
	}
	dst = dst[:len(frame)]
	for i, c := range frame {
		dst[i] = uint32(c.G)<<24 | uint32(c.R)<<16 | uint32(c.B)<<8
	}
	return dst
}
