// Package utf classifies extracted byte runs as legible text. It carries its
// own UTF-8 codec so that scans over untrusted buffers keep the exact
// acceptance rules used by the string extractors (4-byte sequences up to
// 0x1FFFFF, no overlong rejection) rather than the stricter stdlib ones.
package utf

// Rune is a decoded code point. Values above 0x10FFFF are representable so
// that the classification tables can cover the whole 32-bit range.
type Rune uint32

// MaxEncodable is the first code point EncodeUTF8 can not represent.
const MaxEncodable Rune = 0x200000

type runeRange struct {
	from, to Rune
}

// DecodeUTF8 decodes the first 1-4 byte sequence of p. It returns the code
// point and the number of bytes consumed, or (0, 0) when the leading byte or
// a continuation byte is malformed or p is too short. Callers scanning a
// buffer must skip one raw byte when 0 is returned.
func DecodeUTF8(p []byte) (Rune, int) {
	n := len(p)
	switch {
	case n < 1:
		return 0, 0
	case p[0] < 0x80:
		return Rune(p[0]), 1
	case n > 1 && p[0]&0xe0 == 0xc0 && p[1]&0xc0 == 0x80:
		return Rune(p[0]&0x1f)<<6 | Rune(p[1]&0x3f), 2
	case n > 2 && p[0]&0xf0 == 0xe0 && p[1]&0xc0 == 0x80 && p[2]&0xc0 == 0x80:
		return Rune(p[0]&0xf)<<12 | Rune(p[1]&0x3f)<<6 | Rune(p[2]&0x3f), 3
	case n > 3 && p[0]&0xf8 == 0xf0 && p[1]&0xc0 == 0x80 && p[2]&0xc0 == 0x80 && p[3]&0xc0 == 0x80:
		return Rune(p[0]&7)<<18 | Rune(p[1]&0x3f)<<12 | Rune(p[2]&0x3f)<<6 | Rune(p[3]&0x3f), 4
	}
	return 0, 0
}

// EncodeUTF8 writes the encoding of r into p and returns the number of bytes
// written. It panics if p is too small, like utf8.EncodeRune. It returns 0
// for r >= MaxEncodable; the 5 and 6 byte legacy forms are not produced.
func EncodeUTF8(p []byte, r Rune) int {
	switch {
	case r < 0x80:
		p[0] = byte(r)
		return 1
	case r < 0x800:
		_ = p[1]
		p[0] = 0xc0 | byte(r>>6)
		p[1] = 0x80 | byte(r&0x3f)
		return 2
	case r < 0x10000:
		_ = p[2]
		p[0] = 0xe0 | byte(r>>12)
		p[1] = 0x80 | byte((r>>6)&0x3f)
		p[2] = 0x80 | byte(r&0x3f)
		return 3
	case r < MaxEncodable:
		_ = p[3]
		p[0] = 0xf0 | byte(r>>18)
		p[1] = 0x80 | byte((r>>12)&0x3f)
		p[2] = 0x80 | byte((r>>6)&0x3f)
		p[3] = 0x80 | byte(r&0x3f)
		return 4
	}
	return 0
}

// AppendUTF8 appends the encoding of r to p. Unencodable runes are dropped.
func AppendUTF8(p []byte, r Rune) []byte {
	var buf [4]byte
	n := EncodeUTF8(buf[:], r)
	return append(p, buf[:n]...)
}

// Size returns the length of the sequence introduced by the leading byte b,
// or 0 if b can not start a sequence.
func Size(b byte) int {
	switch {
	case b&0x80 == 0:
		return 1
	case b&0xc0 == 0x80:
		return 0
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	}
	return 4
}

// Strlen counts the code points of p by skipping continuation bytes.
func Strlen(p []byte) int {
	n := 0
	for _, b := range p {
		if b&0xc0 != 0x80 {
			n++
		}
	}
	return n
}

// IsPrint reports whether r is outside every non-printable range.
func IsPrint(r Rune) bool {
	lo, hi := 0, len(nonPrintable)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case r < nonPrintable[mid].from:
			hi = mid - 1
		case r > nonPrintable[mid].to:
			lo = mid + 1
		default:
			return false
		}
	}
	return true
}

// IsPrintableBytes reports whether p decodes cleanly and every code point is
// printable. An empty slice is printable.
func IsPrintableBytes(p []byte) bool {
	for len(p) > 0 {
		r, n := DecodeUTF8(p)
		if n == 0 || !IsPrint(r) {
			return false
		}
		p = p[n:]
	}
	return true
}

// IsPrintable is IsPrintableBytes for strings.
func IsPrintable(s string) bool {
	return IsPrintableBytes([]byte(s))
}
