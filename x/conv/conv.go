// Package conv appends numbers to byte slices without fmt or strconv, for
// log lines and topic strings built on the device.
package conv

const digits = "0123456789ABCDEF"

// AppendUint appends the base-10 form of n.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = digits[n%10]
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// AppendInt appends the base-10 form of n, with a leading '-' if negative.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-(n + 1))+1)
	}
	return AppendUint(dst, uint64(n))
}

// AppendHex32 appends n as 8 upper-case hex digits, zero padded, no prefix.
func AppendHex32(dst []byte, n uint32) []byte {
	var buf [8]byte
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = digits[n&0xF]
		n >>= 4
	}
	return append(dst, buf[:]...)
}

// AppendBool appends "true" or "false".
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

// Itoa is AppendInt into a new string.
func Itoa(n int) string {
	var buf [21]byte
	return string(AppendInt(buf[:0], int64(n)))
}
