package pe

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binobj/internal/bin"
	"binobj/internal/buffer"
	"binobj/internal/common"
)

const (
	imageBase = 0x140000000
	lfanew    = 0x40
	textRaw   = 0x200
	rdataRaw  = 0x400
	fileAlign = 0x200
)

var rdata = []byte("hello from rdata\x00")

func name8(s string) []byte {
	b := make([]byte, 8)
	copy(b, s)
	return b
}

// tinyPE returns a PE32+ executable with .text and .rdata sections and no
// data directories.
func tinyPE(t *testing.T) []byte {
	t.Helper()
	var b bytes.Buffer
	w := func(vs ...any) {
		for _, v := range vs {
			require.NoError(t, binary.Write(&b, binary.LittleEndian, v))
		}
	}
	dos := make([]byte, lfanew)
	copy(dos, "MZ")
	binary.LittleEndian.PutUint32(dos[0x3c:], lfanew)
	b.Write(dos)

	b.WriteString("PE\x00\x00")
	w(uint16(machineAMD64), uint16(2), uint32(0), uint32(0), uint32(0), uint16(240), uint16(0x0022))

	w(uint16(0x20b), uint8(14), uint8(0))
	w(uint32(fileAlign), uint32(fileAlign), uint32(0), uint32(0x1000), uint32(0x1000))
	w(uint64(imageBase), uint32(0x1000), uint32(fileAlign))
	w(uint16(6), uint16(0), uint16(0), uint16(0), uint16(6), uint16(0))
	w(uint32(0), uint32(0x3000), uint32(0x200), uint32(0))
	w(uint16(3), uint16(0x8160))
	w(uint64(0x100000), uint64(0x1000), uint64(0x100000), uint64(0x1000))
	w(uint32(0), uint32(16))
	b.Write(make([]byte, 16*8))

	w(name8(".text"), uint32(0x10), uint32(0x1000), uint32(fileAlign), uint32(textRaw), uint32(0), uint32(0), uint16(0), uint16(0), uint32(scnCode|scnExecute|scnRead))
	w(name8(".rdata"), uint32(len(rdata)), uint32(0x2000), uint32(fileAlign), uint32(rdataRaw), uint32(0), uint32(0), uint16(0), uint16(0), uint32(scnInitialized|scnRead))

	b.Write(make([]byte, textRaw-b.Len()))
	b.Write(append([]byte{0x48, 0x31, 0xc0, 0xc3}, make([]byte, fileAlign-4)...))
	b.Write(rdata)
	b.Write(make([]byte, fileAlign-len(rdata)))
	return b.Bytes()
}

// srdi64 wraps dll in a 64-bit sRDI bootstrap.
func srdi64(dll, user []byte, hash, flags uint32) []byte {
	const boot = 64
	b := make([]byte, boot)
	copy(b, srdiCall)
	copy(b[5:], srdiSig64)
	le := binary.LittleEndian
	dllOff := uint32(boot - 5)
	le.PutUint32(b[10:], hash)
	le.PutUint32(b[17:], dllOff+uint32(len(dll)))
	le.PutUint32(b[23:], uint32(len(user)))
	le.PutUint32(b[47:], dllOff)
	le.PutUint32(b[55:], flags)
	b = append(b, dll...)
	return append(b, user...)
}

func TestCheck(t *testing.T) {
	pe := tinyPE(t)
	assert.True(t, Check(pe))
	assert.True(t, Check(srdi64(pe, nil, 0, 0)))
	assert.False(t, Check([]byte("\x7fELF")))
	assert.False(t, Check([]byte{0xe8, 0, 0, 0, 0, 0x90}))
}

func TestLoad(t *testing.T) {
	b := bin.New(bin.DefaultOptions(), nil)
	bf, err := b.Open("tiny.exe", buffer.New(tinyPE(t)), New(), bin.NoAddr, bin.NoAddr)
	require.NoError(t, err)
	o := bf.Cur()
	require.NotNil(t, o)

	require.NotNil(t, o.Info)
	assert.Equal(t, "x86", o.Info.Arch)
	assert.Equal(t, 64, o.Info.Bits)
	assert.Equal(t, "PE32+", o.Info.Class)
	assert.Equal(t, "windows", o.Info.OS)
	assert.Equal(t, "AMD64", o.Info.Machine)
	assert.Equal(t, uint64(imageBase), o.BaseAddress())

	require.NotNil(t, o.SpecialSymbols[bin.SymEntry])
	assert.Equal(t, uint64(imageBase+0x1000), o.SpecialSymbols[bin.SymEntry].VAddr)
	assert.Equal(t, uint64(textRaw), o.SpecialSymbols[bin.SymEntry].PAddr)

	require.Len(t, o.Sections, 2)
	assert.Equal(t, ".text", o.Sections[0].Name)
	assert.Equal(t, "r-x", o.Sections[0].Perm.String())
	assert.False(t, o.Sections[0].IsData)
	assert.True(t, o.Sections[1].IsData)
	assert.Equal(t, uint64(imageBase+0x2000), o.Sections[1].VAddr)

	require.Len(t, o.Strings, 1)
	assert.Equal(t, "hello from rdata", o.Strings[0].String)
	assert.Equal(t, uint64(imageBase+0x2000), o.Strings[0].VAddr)

	require.Len(t, o.Fields, 4)
	assert.Equal(t, uint64(lfanew+4), o.Fields[3].PAddr)

	_, ok := o.KV.Get("pe.loader")
	assert.False(t, ok)
}

func TestLoadSRDI(t *testing.T) {
	dll := tinyPE(t)
	data := srdi64(dll, []byte("user"), 0xdeadbeef, 0x5)

	slices := New().Slices(buffer.New(data))
	require.Len(t, slices, 1)
	assert.Equal(t, bin.Slice{Offset: 64, Size: uint64(len(dll)), Arch: "x86", Bits: 64}, slices[0])

	b := bin.New(bin.DefaultOptions(), nil)
	bf, err := b.Open("payload.bin", buffer.New(data), New(), bin.NoAddr, bin.NoAddr)
	require.NoError(t, err)
	o := bf.Cur()
	assert.Equal(t, uint64(64), o.BaseOffset)
	assert.Equal(t, uint64(imageBase), o.BaseAddress())

	for key, want := range map[string]string{
		"pe.loader":        "srdi",
		"pe.srdi.hash":     "0xdeadbeef",
		"pe.srdi.flags":    "clear-header,obfuscate-imports",
		"pe.srdi.userdata": "user",
	} {
		got, ok := o.KV.Get(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestParseSRDI(t *testing.T) {
	dll := bytes.Repeat([]byte{0xcc}, 32)
	h, ok := parseSRDI(srdi64(dll, []byte("abc"), 1, 0x8))
	require.True(t, ok)
	assert.Equal(t, common.AMD64, h.Arch)
	assert.Equal(t, uint32(64), h.DLLOffset)
	assert.Equal(t, uint32(32), h.DLLSize)
	assert.Equal(t, []byte("abc"), h.UserData)
	assert.True(t, h.Flags.PassesBase())
	assert.False(t, h.Flags.ClearsMemory())

	data := srdi64(dll, nil, 1, 0)
	_, ok = parseSRDI(data[:80])
	assert.False(t, ok, "truncated dll")
	_, ok = parseSRDI(data[:40])
	assert.False(t, ok, "truncated bootstrap")
}

func TestSRDITarget(t *testing.T) {
	exports := []string{"DllMain", "Run", "Stop"}
	name, ok := srdiTarget(exports, ror13("Run"))
	assert.True(t, ok)
	assert.Equal(t, "Run", name)
	_, ok = srdiTarget(exports, ror13("Missing"))
	assert.False(t, ok)
	assert.NotEqual(t, ror13("Run"), ror13("Stop"))
}

func TestPE2SHCArch(t *testing.T) {
	tests := []struct {
		name string
		stub []byte
		want common.CPUArch
		ok   bool
	}{
		{"multi", pe2shcStubs[0].stub, common.MultiArch, true},
		{"amd64", pe2shcStubs[1].stub, common.AMD64, true},
		{"x86", pe2shcStubs[2].stub, common.X86, true},
		{"plain", append([]byte("MZ"), make([]byte, 20)...), common.Unknown, false},
		{"short", []byte("MZER"), common.Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arch, ok := pe2shcArch(tt.stub)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, arch)
		})
	}
}
