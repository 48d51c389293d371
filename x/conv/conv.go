// Package conv formats integers without fmt or strconv so firmware builds
// stay small.
package conv

// AppendUint appends the decimal form of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendInt appends the decimal form of n, with a leading '-' when negative.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		return AppendUint(append(dst, '-'), uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

func Utoa(n uint64) string { return string(AppendUint(nil, n)) }

func Itoa(n int64) string { return string(AppendInt(nil, n)) }
