package elf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/Binject/debug/elf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binobj/internal/bin"
	"binobj/internal/buffer"
)

const (
	textOff   = 0x78
	rodataOff = 0x88
	shstrOff  = 0x9a
	shOff     = 0xb8
	base      = 0x400000
)

var (
	rodata   = []byte("hello from rodata\x00")
	shstrtab = []byte("\x00.text\x00.rodata\x00.shstrtab\x00")
)

// tinyELF returns a static x86-64 executable with .text, .rodata and
// .shstrtab and no symbol table.
func tinyELF(t *testing.T) []byte {
	t.Helper()
	var b bytes.Buffer
	w := func(v any) {
		require.NoError(t, binary.Write(&b, binary.LittleEndian, v))
	}

	hdr := elf.Header64{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_X86_64),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     base + textOff,
		Phoff:     64,
		Shoff:     shOff,
		Ehsize:    64,
		Phentsize: 56,
		Phnum:     1,
		Shentsize: 64,
		Shnum:     4,
		Shstrndx:  3,
	}
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS64)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	w(hdr)

	end := uint64(shOff + 4*64)
	w(elf.Prog64{
		Type:   uint32(elf.PT_LOAD),
		Flags:  uint32(elf.PF_R | elf.PF_X),
		Vaddr:  base,
		Paddr:  base,
		Filesz: end,
		Memsz:  end,
		Align:  0x1000,
	})
	w(bytes.Repeat([]byte{0x90}, 16))
	w(rodata)
	w(shstrtab)
	b.Write(make([]byte, shOff-b.Len()))

	w(elf.Section64{})
	w(elf.Section64{
		Name: 1, Type: uint32(elf.SHT_PROGBITS), Flags: uint64(elf.SHF_ALLOC | elf.SHF_EXECINSTR),
		Addr: base + textOff, Off: textOff, Size: 16, Addralign: 16,
	})
	w(elf.Section64{
		Name: 7, Type: uint32(elf.SHT_PROGBITS), Flags: uint64(elf.SHF_ALLOC),
		Addr: base + rodataOff, Off: rodataOff, Size: uint64(len(rodata)), Addralign: 1,
	})
	w(elf.Section64{
		Name: 15, Type: uint32(elf.SHT_STRTAB),
		Off: shstrOff, Size: uint64(len(shstrtab)), Addralign: 1,
	})
	return b.Bytes()
}

func TestCheck(t *testing.T) {
	assert.True(t, Check(tinyELF(t)))
	assert.False(t, Check([]byte("MZ\x90\x00")))
	assert.False(t, Check(nil))
}

func TestLoad(t *testing.T) {
	data := tinyELF(t)
	b := bin.New(bin.DefaultOptions(), nil)
	bf, err := b.Open("tiny", buffer.New(data), New(), bin.NoAddr, bin.NoAddr)
	require.NoError(t, err)
	o := bf.Cur()
	require.NotNil(t, o)

	require.NotNil(t, o.Info)
	assert.Equal(t, "x86", o.Info.Arch)
	assert.Equal(t, 64, o.Info.Bits)
	assert.Equal(t, "tiny", o.Info.File)
	assert.Equal(t, "EM_X86_64", o.Info.Machine)
	assert.True(t, o.Info.Stripped)
	assert.False(t, o.Info.BigEndian)

	assert.Equal(t, uint64(base), o.BaseAddress())
	assert.Equal(t, uint64(len(data)), o.Size)

	require.NotNil(t, o.SpecialSymbols[bin.SymEntry])
	assert.Equal(t, uint64(base+textOff), o.SpecialSymbols[bin.SymEntry].VAddr)
	assert.Equal(t, uint64(textOff), o.SpecialSymbols[bin.SymEntry].PAddr)
	assert.Nil(t, o.SpecialSymbols[bin.SymMain])
	require.Len(t, o.Entries, 1)
	assert.Equal(t, 64, o.Entries[0].Bits)

	var names []string
	for _, s := range o.Sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{".text", ".rodata", ".shstrtab"}, names)
	assert.Equal(t, "r-x", o.Sections[0].Perm.String())
	assert.True(t, o.Sections[1].IsData)
	assert.False(t, o.Sections[0].IsData)

	require.Len(t, o.Strings, 1)
	assert.Equal(t, "hello from rodata", o.Strings[0].String)
	assert.Equal(t, ".rodata", o.Strings[0].Section)
	assert.Equal(t, uint64(base+rodataOff), o.Strings[0].VAddr)

	assert.Empty(t, o.Symbols)
	assert.Empty(t, o.Imports)
	assert.Equal(t, bin.LangC, o.Lang)

	v, ok := o.KV.Get("elf.machine")
	assert.True(t, ok)
	assert.Equal(t, "EM_X86_64", v)
}

func TestLoadGarbage(t *testing.T) {
	b := bin.New(bin.DefaultOptions(), nil)
	_, err := b.Open("junk", buffer.New([]byte("\x7fELFjunk")), New(), bin.NoAddr, bin.NoAddr)
	assert.ErrorIs(t, err, bin.ErrLoadFailed)
}

func TestFindNote(t *testing.T) {
	var b bytes.Buffer
	note := func(name string, typ uint32, desc []byte) {
		nb := append([]byte(name), 0)
		binary.Write(&b, binary.LittleEndian, uint32(len(nb)))
		binary.Write(&b, binary.LittleEndian, uint32(len(desc)))
		binary.Write(&b, binary.LittleEndian, typ)
		b.Write(nb)
		b.Write(make([]byte, (4-len(nb)%4)%4))
		b.Write(desc)
		b.Write(make([]byte, (4-len(desc)%4)%4))
	}
	note("CORE", 3, []byte{9, 9, 9})
	note("CORE", ntPRStatus, []byte{1, 2, 3, 4, 5, 6})

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, findNote(b.Bytes(), binary.LittleEndian, ntPRStatus))
	assert.Nil(t, findNote(b.Bytes(), binary.LittleEndian, 99))
	assert.Nil(t, findNote(b.Bytes()[:20], binary.LittleEndian, ntPRStatus))
}

func TestFindNoteHugeName(t *testing.T) {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, uint32(0xfffffffd))
	binary.Write(&b, binary.LittleEndian, uint32(4))
	binary.Write(&b, binary.LittleEndian, uint32(ntPRStatus))
	b.Write([]byte{1, 2, 3, 4})

	assert.Nil(t, findNote(b.Bytes(), binary.LittleEndian, ntPRStatus))
}
