package bin

import (
	"encoding/base64"
	"strings"

	"binobj/internal/utf"
)

// decodeBase64 decodes standard-alphabet base64 with or without padding.
// Line breaks are not part of the alphabet.
func decodeBase64(s string) ([]byte, bool) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, false
	}
	s = strings.TrimRight(s, "=")
	if s == "" || len(s)%4 == 1 {
		return nil, false
	}
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

// RefineStrings replaces every string that is base64 of printable text with
// its decoding. Nested encodings are peeled until the result stops decoding
// to printable text. Replaced strings get type StringBase64.
func RefineStrings(strs []*String) {
	for _, s := range strs {
		dec, ok := decodeBase64(s.String)
		if !ok {
			continue
		}
		cur := s.String
		for {
			next, ok := decodeBase64(cur)
			if !ok || !utf.IsPrintableBytes(next) {
				break
			}
			dec = next
			cur = string(next)
		}
		if len(dec) > 3 && utf.IsPrintableBytes(dec) {
			s.String = string(dec)
			s.Length = uint64(utf.Strlen(dec))
			s.Type = StringBase64
		}
	}
}
