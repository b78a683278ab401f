package record

// Encode copies v into dst and pads the rest of dst with f. len(v) must not
// exceed len(dst).
func Encode(dst, v []byte, f Filler) {
	n := copy(dst, v)
	Pad(dst[n:], f)
}

func Pad(buf []byte, f Filler) {
	for i := range buf {
		buf[i] = byte(f)
	}
}

// Compare orders two full records byte by byte, filler bytes included.
func Compare(a, b []byte) int {
	for i, j := 0, len(a); i < j; i++ {
		if d := int(a[i]) - int(b[i]); d != 0 {
			return d
		}
	}
	return 0
}

// CompareQuery orders q against the record rec. A record that carries real
// content past len(q) is greater than q, so a proper prefix never matches.
func CompareQuery(rec, q []byte, f Filler) int {
	limit := len(q)
	if limit > len(rec) {
		limit = len(rec)
	}
	for i := 0; i < limit; i++ {
		if d := int(q[i]) - int(rec[i]); d != 0 {
			return d
		}
	}
	if len(q) < len(rec) && rec[len(q)] != byte(f) {
		return -1
	}
	return 0
}
