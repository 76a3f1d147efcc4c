package pe

import (
	"bytes"
	"encoding/binary"
	mathbits "math/bits"
	"strings"

	"binobj/internal/common"
)

// sRDI bootstrap: a relative call followed by an architecture specific
// prologue. https://github.com/monoxgas/sRDI/blob/master/Python/ShellcodeRDI.py
var (
	srdiCall  = []byte{0xe8, 0, 0, 0, 0}
	srdiSig64 = []byte{0x59, 0x49, 0x89, 0xc8}
	srdiSig32 = []byte{0x58, 0x55, 0x89, 0xe5, 0x89, 0xc2}
)

type srdiFlags uint32

func (f srdiFlags) ClearsHeader() bool      { return f&0x1 != 0 }
func (f srdiFlags) ClearsMemory() bool      { return f&0x2 != 0 }
func (f srdiFlags) ObfuscatesImports() bool { return f&0x4 != 0 }
func (f srdiFlags) PassesBase() bool        { return f&0x8 != 0 }

func (f srdiFlags) String() string {
	var out []string
	if f.ClearsHeader() {
		out = append(out, "clear-header")
	}
	if f.ClearsMemory() {
		out = append(out, "clear-memory")
	}
	if f.ObfuscatesImports() {
		out = append(out, "obfuscate-imports")
	}
	if f.PassesBase() {
		out = append(out, "pass-base")
	}
	return strings.Join(out, ",")
}

type srdiHeader struct {
	Arch         common.CPUArch
	FunctionHash uint32
	Flags        srdiFlags
	// DLLOffset is the file offset of the embedded DLL.
	DLLOffset uint32
	DLLSize   uint32
	UserData  []byte
}

// parseSRDI decodes the bootstrap operands of an sRDI shellcode. The DLL
// starts 5 bytes past the encoded offset, and the user data follows it.
func parseSRDI(b []byte) (*srdiHeader, bool) {
	if !bytes.HasPrefix(b, srdiCall) {
		return nil, false
	}
	le := binary.LittleEndian
	var h srdiHeader
	var userOff, userLen, dllOff uint32
	switch rest := b[len(srdiCall):]; {
	case bytes.HasPrefix(rest, srdiSig64) && len(b) >= 59:
		h.Arch = common.AMD64
		h.FunctionHash = le.Uint32(b[10:])
		userOff = le.Uint32(b[17:])
		userLen = le.Uint32(b[23:])
		dllOff = le.Uint32(b[47:])
		h.Flags = srdiFlags(le.Uint32(b[55:]))
	case bytes.HasPrefix(rest, srdiSig32) && len(b) >= 39:
		h.Arch = common.X86
		h.Flags = srdiFlags(le.Uint32(b[12:]))
		userOff = le.Uint32(b[19:])
		userLen = le.Uint32(b[24:])
		h.FunctionHash = le.Uint32(b[30:])
		dllOff = le.Uint32(b[35:])
	default:
		return nil, false
	}
	if userOff <= dllOff {
		return nil, false
	}
	h.DLLOffset = dllOff + 5
	h.DLLSize = userOff - dllOff
	end := uint64(h.DLLOffset) + uint64(h.DLLSize)
	if end > uint64(len(b)) {
		return nil, false
	}
	user := b[end:]
	if uint64(userLen) < uint64(len(user)) {
		user = user[:userLen]
	}
	h.UserData = user
	return &h, true
}

// ror13 is the export name hash sRDI uses to pick the function to call.
func ror13(name string) uint32 {
	var h uint32
	for _, c := range append([]byte(name), 0) {
		h = mathbits.RotateLeft32(h, -13)
		h += uint32(c)
	}
	return h
}

func srdiTarget(exports []string, hash uint32) (string, bool) {
	for _, name := range exports {
		if ror13(name) == hash {
			return name, true
		}
	}
	return "", false
}

// pe_to_shellcode stubs. The image stays a valid PE; bytes 9-14 tell the
// variants apart. https://github.com/hasherezade/pe_to_shellcode
var pe2shcStubs = []struct {
	arch common.CPUArch
	stub []byte
}{
	{common.MultiArch, []byte{0x4d, 0x5a, 0x45, 0x52, 0xe8, 0, 0, 0, 0, 0x5b, 0x48, 0x83, 0xeb, 0x09, 0x53}},
	{common.AMD64, []byte{0x4d, 0x5a, 0x45, 0x52, 0xe8, 0, 0, 0, 0, 0x59, 0x48, 0x83, 0xe9, 0x09, 0x48}},
	{common.X86, []byte{0x4d, 0x5a, 0x45, 0x52, 0xe8, 0, 0, 0, 0, 0x58, 0x83, 0xe8, 0x09, 0x50, 0x05}},
}

func pe2shcArch(b []byte) (common.CPUArch, bool) {
	for _, s := range pe2shcStubs {
		if len(b) >= len(s.stub) && bytes.Equal(b[:4], s.stub[:4]) && bytes.Equal(b[9:14], s.stub[9:14]) {
			return s.arch, true
		}
	}
	return common.Unknown, false
}
