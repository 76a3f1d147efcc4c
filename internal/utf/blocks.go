package utf

// Block is a named Unicode block.
type Block struct {
	From Rune
	To   Rune
	Name string
}

// NoBlock is the index BlockIndex returns for code points outside every named
// block, including everything at or above 0x110000.
var NoBlock = len(blocks) - 1

// NumBlocks is the size of the block table, NoBlock included.
func NumBlocks() int {
	return len(blocks)
}

// BlockName returns the name of block idx, or "" if idx is out of range.
func BlockName(idx int) string {
	if idx < 0 || idx >= len(blocks) {
		return ""
	}
	return blocks[idx].Name
}

// BlockIndex returns the index of the block containing r, or NoBlock.
func BlockIndex(r Rune) int {
	lo, hi := 0, len(blocks)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case r < blocks[mid].From:
			hi = mid - 1
		case r > blocks[mid].To:
			lo = mid + 1
		default:
			return mid
		}
	}
	return NoBlock
}

// BlockList decodes p and returns the index of every block it touches, in
// order of first occurrence. Malformed bytes count as NoBlock and are skipped
// one at a time. The seen-set is local to the call so concurrent calls on
// different inputs are safe.
func BlockList(p []byte) []int {
	seen := make([]bool, len(blocks))
	var list []int
	for len(p) > 0 {
		idx := NoBlock
		r, n := DecodeUTF8(p)
		if n == 0 {
			n = 1
		} else {
			idx = BlockIndex(r)
		}
		if !seen[idx] {
			seen[idx] = true
			list = append(list, idx)
		}
		p = p[n:]
	}
	return list
}
