package macho

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/Binject/debug/macho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binobj/internal/bin"
	"binobj/internal/buffer"
)

const (
	textAddr  = 0x100000000
	cmdsSize  = 152 + 24 + 24
	cstrOff   = 32 + cmdsSize
	symOff    = 248
	cstring   = "hello mach-o\x00"
	lcSymtab  = 0x2
	lcSegment = 0x19
)

var symNames = []string{"_main", "-[Foo bar]", "-[Foo baz:]", "_OBJC_CLASS_$_Foo"}

func name16(s string) []byte {
	b := make([]byte, 16)
	copy(b, s)
	return b
}

// thinMachO returns a 64-bit executable with a __TEXT,__cstring section,
// LC_MAIN and a symbol table holding two Objective-C methods.
func thinMachO(t *testing.T, cpu macho.Cpu) []byte {
	t.Helper()
	var strtab bytes.Buffer
	strtab.WriteByte(0)
	idx := make([]uint32, len(symNames))
	for i, n := range symNames {
		idx[i] = uint32(strtab.Len())
		strtab.WriteString(n + "\x00")
	}
	strOff := symOff + 16*len(symNames)
	total := strOff + strtab.Len()

	var b bytes.Buffer
	w := func(vs ...any) {
		for _, v := range vs {
			require.NoError(t, binary.Write(&b, binary.LittleEndian, v))
		}
	}
	w(uint32(macho.Magic64), uint32(cpu), uint32(3), uint32(macho.TypeExec), uint32(3), uint32(cmdsSize), uint32(0), uint32(0))

	w(uint32(lcSegment), uint32(152), name16("__TEXT"))
	w(uint64(textAddr), uint64(0x1000), uint64(0), uint64(total), uint32(5), uint32(5), uint32(1), uint32(0))
	w(name16("__cstring"), name16("__TEXT"))
	w(uint64(textAddr+cstrOff), uint64(len(cstring)), uint32(cstrOff), uint32(0), uint32(0), uint32(0), uint32(sCStrings), uint32(0), uint32(0), uint32(0))

	w(uint32(lcMain), uint32(24), uint64(cstrOff), uint64(0))
	w(uint32(lcSymtab), uint32(24), uint32(symOff), uint32(len(symNames)), uint32(strOff), uint32(strtab.Len()))

	b.WriteString(cstring)
	b.Write(make([]byte, symOff-b.Len()))
	for i := range symNames {
		typ := uint8(0x0e)
		if i == 0 || i == 3 {
			typ = 0x0f
		}
		w(idx[i], typ, uint8(1), uint16(0), uint64(textAddr+cstrOff+uint64(i)))
	}
	b.Write(strtab.Bytes())
	return b.Bytes()
}

func fatMachO(t *testing.T, images ...[]byte) []byte {
	t.Helper()
	var b bytes.Buffer
	w := func(vs ...any) {
		for _, v := range vs {
			require.NoError(t, binary.Write(&b, binary.BigEndian, v))
		}
	}
	w(uint32(macho.MagicFat), uint32(len(images)))
	off := uint32(0x1000)
	for _, img := range images {
		cpu := binary.LittleEndian.Uint32(img[4:])
		w(cpu, uint32(0), off, uint32(len(img)), uint32(12))
		off += 0x1000
	}
	for i, img := range images {
		b.Write(make([]byte, 0x1000*(i+1)-b.Len()))
		b.Write(img)
	}
	return b.Bytes()
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"thin", thinMachO(t, macho.CpuAmd64), true},
		{"fat", fatMachO(t, thinMachO(t, macho.CpuAmd64)), true},
		{"java", []byte{0xca, 0xfe, 0xba, 0xbe, 0x00, 0x00, 0x00, 0x34}, false},
		{"elf", []byte("\x7fELF\x02\x01\x01\x00"), false},
		{"short", []byte{0xcf, 0xfa}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.data))
		})
	}
}

func TestLoad(t *testing.T) {
	b := bin.New(bin.DefaultOptions(), nil)
	bf, err := b.Open("thin", buffer.New(thinMachO(t, macho.CpuAmd64)), New(), bin.NoAddr, bin.NoAddr)
	require.NoError(t, err)
	require.Len(t, bf.Objects(), 1)
	o := bf.Cur()

	require.NotNil(t, o.Info)
	assert.Equal(t, "x86", o.Info.Arch)
	assert.Equal(t, 64, o.Info.Bits)
	assert.Equal(t, "darwin", o.Info.OS)
	assert.Equal(t, uint64(textAddr), o.BaseAddress())

	require.NotNil(t, o.SpecialSymbols[bin.SymEntry])
	assert.Equal(t, uint64(textAddr+cstrOff), o.SpecialSymbols[bin.SymEntry].VAddr)
	require.NotNil(t, o.SpecialSymbols[bin.SymMain])
	assert.Equal(t, uint64(textAddr+cstrOff), o.SpecialSymbols[bin.SymMain].VAddr)

	require.Len(t, o.Sections, 1)
	assert.Equal(t, "__TEXT.__cstring", o.Sections[0].Name)
	assert.True(t, o.Sections[0].IsData)
	assert.Equal(t, "r-x", o.Sections[0].Perm.String())

	require.Len(t, o.Strings, 1)
	assert.Equal(t, "hello mach-o", o.Strings[0].String)

	require.Len(t, o.Symbols, len(symNames))
	assert.Equal(t, "GLOBAL", o.Symbols[0].Bind)
	assert.Equal(t, "LOCAL", o.Symbols[1].Bind)
	assert.Equal(t, "Foo", o.Symbols[1].Classname)
	assert.Equal(t, bin.LangObjC, o.Lang)

	require.Len(t, o.Classes, 1)
	assert.Equal(t, "Foo", o.Classes[0].Name)
	require.Len(t, o.Classes[0].Methods, 2)
	assert.Same(t, o.Symbols[1], o.Classes[0].Methods[0])
	assert.Same(t, o.Symbols[2], o.Classes[0].Methods[1])

	v, ok := o.KV.Get("mach0.cpu")
	assert.True(t, ok)
	assert.Equal(t, macho.CpuAmd64.String(), v)
}

func TestLoadFat(t *testing.T) {
	data := fatMachO(t, thinMachO(t, macho.CpuAmd64), thinMachO(t, macho.CpuArm64))

	slices := New().Slices(buffer.New(data))
	require.Len(t, slices, 2)
	assert.Equal(t, bin.Slice{Offset: 0x1000, Size: uint64(len(thinMachO(t, macho.CpuAmd64))), Arch: "x86", Bits: 64}, slices[0])
	assert.Equal(t, "arm", slices[1].Arch)

	b := bin.New(bin.DefaultOptions(), nil)
	bf, err := b.Open("fat", buffer.New(data), New(), bin.NoAddr, bin.NoAddr)
	require.NoError(t, err)
	require.Len(t, bf.Objects(), 2)

	o, err := bf.FindByArchAndBits("arm", 64, "fat")
	require.NoError(t, err)
	require.Len(t, o.Strings, 1)
	assert.Equal(t, "hello mach-o", o.Strings[0].String)
	assert.Equal(t, uint64(textAddr), o.BaseAddress())
}

func TestSlicesThin(t *testing.T) {
	assert.Nil(t, New().Slices(buffer.New(thinMachO(t, macho.CpuAmd64))))
}

func TestSwiftClassname(t *testing.T) {
	tests := []struct {
		dn   string
		want string
	}{
		{"main.Foo.bar() -> ()", "Foo"},
		{"main.Foo.count.getter_Swift.Int", "Foo"},
		{"main.Foo.count.setter_Swift.Int", "Foo"},
		{"main.topLevel() -> ()", ""},
		{"Mod.Outer.Inner.run(Swift.Int) -> ()", "Inner"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, swiftClassname(tt.dn), tt.dn)
	}
}

func TestSwiftDisplayName(t *testing.T) {
	assert.Equal(t, "main.Foo.count.getter_Swift.Int", swiftDisplayName("main.Foo.count.getter : Swift.Int"))
	assert.Equal(t, "main.Foo.bar() -> ()", swiftDisplayName("main.Foo.bar() -> ()"))
}

func TestObjCMethod(t *testing.T) {
	cls, sel, ok := objcMethod("+[NSObject alloc]")
	assert.True(t, ok)
	assert.Equal(t, "NSObject", cls)
	assert.Equal(t, "alloc", sel)

	for _, n := range []string{"_main", "-[Foo]", "[Foo bar]", "-[ bar]"} {
		_, _, ok := objcMethod(n)
		assert.False(t, ok, n)
	}
}
