package bin

import (
	"unicode/utf16"

	"binobj/internal/utf"
)

// DefaultMinStrLen is used when neither the options nor the plugin set one.
const DefaultMinStrLen = 4

type scanRange struct {
	off, size uint64
	sec       *Section
}

// ScanStrings finds printable runs of at least minlen characters in o's
// view: UTF-8 (ASCII when every rune is one byte) and UTF-16LE. Without raw
// it reads the sections marked IsData, or the whole view when there are
// none. PAddr of each result is its offset in the view.
func ScanStrings(o *Object, minlen int, raw bool) []*String {
	if minlen <= 0 {
		minlen = DefaultMinStrLen
	}
	view := o.Bytes()
	if len(view) == 0 {
		return nil
	}

	var ranges []scanRange
	if !raw {
		for _, s := range o.Sections {
			if !s.IsData || s.Size == 0 {
				continue
			}
			if s.PAddr < o.sectionShift {
				continue
			}
			off := s.PAddr - o.sectionShift
			if off >= uint64(len(view)) {
				continue
			}
			size := s.Size
			if size > uint64(len(view))-off {
				size = uint64(len(view)) - off
			}
			ranges = append(ranges, scanRange{off: off, size: size, sec: s})
		}
	}
	if len(ranges) == 0 {
		ranges = []scanRange{{off: 0, size: uint64(len(view))}}
	}

	var out []*String
	for _, r := range ranges {
		out = scanBytes(out, o, view[r.off:r.off+r.size], r.off, r.sec, minlen)
	}
	for i, s := range out {
		s.Ordinal = uint32(i)
	}
	return out
}

func scanBytes(out []*String, o *Object, p []byte, base uint64, sec *Section, minlen int) []*String {
	emit := func(i, n int, text string, length int, typ StringType) {
		off := base + uint64(i)
		s := &String{
			String: text,
			PAddr:  off,
			Size:   uint64(n),
			Length: uint64(length),
			Type:   typ,
		}
		if sec != nil {
			s.Section = sec.Name
			s.VAddr = sec.VAddr + (off - base)
		} else {
			s.VAddr = o.BaseAddress() + off
		}
		out = append(out, s)
	}

	for i := 0; i < len(p); {
		if text, n, length := wideAt(p[i:], minlen); n > 0 {
			emit(i, n, text, length, StringWide)
			i += n
			continue
		}
		j, runes, ascii := i, 0, true
		for j < len(p) {
			r, n := utf.DecodeUTF8(p[j:])
			if n == 0 || !strRune(r) {
				break
			}
			if n > 1 {
				ascii = false
			}
			j += n
			runes++
		}
		if runes >= minlen {
			typ := StringUTF8
			if ascii {
				typ = StringASCII
			}
			emit(i, j-i, string(p[i:j]), runes, typ)
		}
		if j == i {
			j++
		}
		i = j
	}
	return out
}

func strRune(r utf.Rune) bool {
	return r == '\t' || utf.IsPrint(r)
}

// wideAt matches a UTF-16LE run of printable ASCII at the start of p.
func wideAt(p []byte, minlen int) (string, int, int) {
	var units []uint16
	i := 0
	for i+1 < len(p) && p[i+1] == 0 && (p[i] == '\t' || (p[i] >= 0x20 && p[i] < 0x7f)) {
		units = append(units, uint16(p[i]))
		i += 2
	}
	if len(units) < minlen {
		return "", 0, 0
	}
	return string(utf16.Decode(units)), i, len(units)
}
