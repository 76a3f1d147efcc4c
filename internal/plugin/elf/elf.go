// Package elf adapts github.com/Binject/debug/elf to the bin plugin
// capabilities.
package elf

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/Binject/debug/elf"
	"github.com/ianlancetaylor/demangle"
	"github.com/pkg/errors"

	"binobj/internal/bin"
	"binobj/internal/buffer"
	"binobj/internal/common"
	"binobj/internal/kv"
)

const ntPRStatus = 1

type Plugin struct {
	bin.PluginBase
}

func New() *Plugin {
	return &Plugin{}
}

// Check reports whether b starts with the ELF magic.
func Check(b []byte) bool {
	return bytes.HasPrefix(b, []byte(elf.ELFMAG))
}

func (p *Plugin) Name() string   { return "elf" }
func (p *Plugin) MinStrLen() int { return 4 }

func (p *Plugin) LoadBuffer(o *bin.Object, buf buffer.Buffer, loadAddr uint64, store kv.Store) (any, error) {
	f, err := elf.NewFile(bytes.NewReader(o.Bytes()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse ELF")
	}
	o.KV.Set("elf.class", f.Class.String())
	o.KV.Set("elf.machine", f.Machine.String())
	o.KV.Set("elf.type", f.Type.String())
	kv.SetUint64(o.KV, "elf.entry", f.Entry)
	return f, nil
}

func (p *Plugin) Destroy(o *bin.Object) {
	if f := file(o); f != nil {
		f.Close()
	}
}

func file(o *bin.Object) *elf.File {
	f, _ := o.BinObj.(*elf.File)
	return f
}

func bits(f *elf.File) int {
	if f.Class == elf.ELFCLASS64 {
		return 64
	}
	return 32
}

func arch(m elf.Machine) common.CPUArch {
	switch m {
	case elf.EM_X86_64:
		return common.AMD64
	case elf.EM_386:
		return common.X86
	case elf.EM_AARCH64:
		return common.ARM64
	case elf.EM_ARM:
		return common.ARM
	case elf.EM_PPC64:
		return common.PPC64
	case elf.EM_PPC:
		return common.PPC
	case elf.EM_MIPS:
		return common.MIPS
	case elf.EM_RISCV:
		return common.RISCV
	}
	return common.Unknown
}

// offset maps a virtual address to its file offset through the PT_LOAD
// segments.
func offset(f *elf.File, vaddr uint64) (uint64, bool) {
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		if vaddr >= prog.Vaddr && vaddr-prog.Vaddr < prog.Filesz {
			return prog.Off + vaddr - prog.Vaddr, true
		}
	}
	return 0, false
}

func (p *Plugin) FileType(o *bin.Object) bin.FileType {
	if f := file(o); f != nil && f.Type == elf.ET_CORE {
		return bin.FileTypeCore
	}
	return bin.FileTypeDefault
}

func (p *Plugin) BaseAddr(o *bin.Object) (uint64, bool) {
	f := file(o)
	if f == nil {
		return 0, false
	}
	found := false
	var base uint64
	for _, prog := range f.Progs {
		if prog.Type == elf.PT_LOAD && (!found || prog.Vaddr < base) {
			base = prog.Vaddr
			found = true
		}
	}
	return base, found
}

func (p *Plugin) Size(o *bin.Object) (uint64, bool) {
	return uint64(len(o.Bytes())), true
}

func (p *Plugin) addr(f *elf.File, vaddr uint64) *bin.Addr {
	a := &bin.Addr{VAddr: vaddr}
	a.PAddr, _ = offset(f, vaddr)
	return a
}

func (p *Plugin) SpecialSymbol(o *bin.Object, role bin.SymRole) *bin.Addr {
	f := file(o)
	if f == nil {
		return nil
	}
	switch role {
	case bin.SymEntry:
		if f.Entry != 0 {
			return p.addr(f, f.Entry)
		}
	case bin.SymInit:
		if s := f.Section(".init"); s != nil {
			return &bin.Addr{VAddr: s.Addr, PAddr: s.Offset}
		}
	case bin.SymFini:
		if s := f.Section(".fini"); s != nil {
			return &bin.Addr{VAddr: s.Addr, PAddr: s.Offset}
		}
	case bin.SymMain:
		syms, _ := f.Symbols()
		for _, s := range syms {
			if s.Name == "main" && elf.ST_TYPE(s.Info) == elf.STT_FUNC {
				return p.addr(f, s.Value)
			}
		}
	}
	return nil
}

func (p *Plugin) Entries(o *bin.Object) []*bin.Addr {
	f := file(o)
	if f == nil || f.Entry == 0 {
		return nil
	}
	a := p.addr(f, f.Entry)
	a.HAddr = 0x18
	a.Bits = bits(f)
	return []*bin.Addr{a}
}

func (p *Plugin) Fields(o *bin.Object) []*bin.Field {
	f := file(o)
	if f == nil {
		return nil
	}
	return []*bin.Field{
		{Name: "ELF", PAddr: 0, Size: 4, Comment: "magic"},
		{Name: "Type", PAddr: 0x10, Size: 2, Comment: f.Type.String()},
		{Name: "Machine", PAddr: 0x12, Size: 2, Comment: f.Machine.String()},
		{Name: "Entry", PAddr: 0x18, Size: uint64(bits(f) / 8), VAddr: f.Entry},
	}
}

func (p *Plugin) Imports(o *bin.Object) []*bin.Import {
	f := file(o)
	if f == nil {
		return nil
	}
	imps, err := f.ImportedSymbols()
	if err != nil || len(imps) == 0 {
		return nil
	}
	plt := pltSlots(f)
	out := make([]*bin.Import, 0, len(imps))
	for i, imp := range imps {
		out = append(out, &bin.Import{
			Name:    imp.Name,
			Libname: imp.Library,
			Bind:    "GLOBAL",
			Type:    "FUNC",
			Ordinal: uint32(i),
			PAddr:   plt[imp.Name],
		})
	}
	return out
}

// pltSlots maps imported names to the file offset of their GOT slot, from
// the jump-slot relocations.
func pltSlots(f *elf.File) map[string]uint64 {
	slots := make(map[string]uint64)
	for _, r := range relocations(f) {
		if r.name == "" {
			continue
		}
		if off, ok := offset(f, r.off); ok {
			slots[r.name] = off
		}
	}
	return slots
}

func (p *Plugin) Symbols(o *bin.Object) []*bin.Symbol {
	f := file(o)
	if f == nil {
		return nil
	}
	syms, _ := f.Symbols()
	dyn, _ := f.DynamicSymbols()
	seen := make(map[string]bool, len(syms))
	var out []*bin.Symbol
	add := func(s elf.Symbol) {
		typ := elf.ST_TYPE(s.Info)
		if s.Name == "" || typ == elf.STT_SECTION || typ == elf.STT_FILE || s.Section == elf.SHN_UNDEF {
			return
		}
		if seen[s.Name] {
			return
		}
		seen[s.Name] = true
		sym := &bin.Symbol{
			Name:    s.Name,
			DName:   s.Name,
			Bind:    strings.TrimPrefix(elf.ST_BIND(s.Info).String(), "STB_"),
			Type:    strings.TrimPrefix(typ.String(), "STT_"),
			VAddr:   s.Value,
			Size:    s.Size,
			Ordinal: uint32(len(out)),
		}
		sym.PAddr, _ = offset(f, s.Value)
		if dn, err := demangle.ToString(s.Name, demangle.NoParams); err == nil {
			sym.DName = dn
			if i := strings.LastIndex(dn, "::"); i > 0 {
				sym.Classname = dn[:i]
			}
		}
		out = append(out, sym)
	}
	for _, s := range syms {
		add(s)
	}
	for _, s := range dyn {
		add(s)
	}
	return out
}

func (p *Plugin) Info(o *bin.Object) *bin.Info {
	f := file(o)
	if f == nil {
		return nil
	}
	a := arch(f.Machine)
	nbits := a.Bits()
	if nbits == 0 {
		nbits = bits(f)
	}
	info := &bin.Info{
		Type:      f.Type.String(),
		Class:     f.Class.String(),
		OS:        strings.ToLower(strings.TrimPrefix(f.OSABI.String(), "ELFOSABI_")),
		Machine:   f.Machine.String(),
		Arch:      common.ArchToString(a),
		Bits:      nbits,
		BigEndian: f.ByteOrder == binary.BigEndian,
		HasVA:     true,
		Stripped:  f.Section(".symtab") == nil,
	}
	if o.File != nil {
		info.File = o.File.Name
	}
	return info
}

func (p *Plugin) Libs(o *bin.Object) []string {
	f := file(o)
	if f == nil {
		return nil
	}
	libs, err := f.ImportedLibraries()
	if err != nil || len(libs) == 0 {
		return nil
	}
	return libs
}

func (p *Plugin) Sections(o *bin.Object) []*bin.Section {
	f := file(o)
	if f == nil {
		return nil
	}
	var out []*bin.Section
	for _, s := range f.Sections {
		if s.Type == elf.SHT_NULL {
			continue
		}
		sec := &bin.Section{
			Name:  s.Name,
			Size:  s.Size,
			VSize: s.Size,
			VAddr: s.Addr,
			PAddr: s.Offset,
		}
		if s.Type == elf.SHT_NOBITS {
			sec.Size = 0
		}
		if s.Flags&elf.SHF_ALLOC != 0 {
			sec.Perm |= bin.PermR
		}
		if s.Flags&elf.SHF_WRITE != 0 {
			sec.Perm |= bin.PermW
		}
		if s.Flags&elf.SHF_EXECINSTR != 0 {
			sec.Perm |= bin.PermX
		}
		sec.IsData = s.Type == elf.SHT_PROGBITS && s.Flags&elf.SHF_ALLOC != 0 && s.Flags&elf.SHF_EXECINSTR == 0
		out = append(out, sec)
	}
	return out
}

type reloc struct {
	off    uint64
	info   uint64
	addend int64
	typ    uint32
	name   string
}

// relocations decodes every REL and RELA section whose symbols come from
// .dynsym.
func relocations(f *elf.File) []reloc {
	dyn, _ := f.DynamicSymbols()
	var out []reloc
	for _, s := range f.Sections {
		if s.Type != elf.SHT_RELA && s.Type != elf.SHT_REL {
			continue
		}
		data, err := s.Data()
		if err != nil {
			continue
		}
		rd := bytes.NewReader(data)
		for rd.Len() > 0 {
			var r reloc
			var sym uint64
			switch {
			case f.Class == elf.ELFCLASS64 && s.Type == elf.SHT_RELA:
				var e elf.Rela64
				if binary.Read(rd, f.ByteOrder, &e) != nil {
					return out
				}
				r = reloc{off: e.Off, info: e.Info, addend: e.Addend, typ: elf.R_TYPE64(e.Info)}
				sym = uint64(elf.R_SYM64(e.Info))
			case f.Class == elf.ELFCLASS64:
				var e elf.Rel64
				if binary.Read(rd, f.ByteOrder, &e) != nil {
					return out
				}
				r = reloc{off: e.Off, info: e.Info, typ: elf.R_TYPE64(e.Info)}
				sym = uint64(elf.R_SYM64(e.Info))
			case s.Type == elf.SHT_RELA:
				var e elf.Rela32
				if binary.Read(rd, f.ByteOrder, &e) != nil {
					return out
				}
				r = reloc{off: uint64(e.Off), info: uint64(e.Info), addend: int64(e.Addend), typ: elf.R_TYPE32(e.Info)}
				sym = uint64(elf.R_SYM32(e.Info))
			default:
				var e elf.Rel32
				if binary.Read(rd, f.ByteOrder, &e) != nil {
					return out
				}
				r = reloc{off: uint64(e.Off), info: uint64(e.Info), typ: elf.R_TYPE32(e.Info)}
				sym = uint64(elf.R_SYM32(e.Info))
			}
			// DynamicSymbols drops the null entry, so index n is dyn[n-1]
			if sym > 0 && sym <= uint64(len(dyn)) {
				r.name = dyn[sym-1].Name
			}
			out = append(out, r)
		}
	}
	return out
}

func (p *Plugin) Relocs(o *bin.Object) []*bin.Reloc {
	f := file(o)
	if f == nil {
		return nil
	}
	rels := relocations(f)
	if len(rels) == 0 {
		return nil
	}
	imports := make(map[string]*bin.Import)
	for _, imp := range o.Imports {
		imports[imp.Name] = imp
	}
	out := make([]*bin.Reloc, 0, len(rels))
	for _, r := range rels {
		rel := &bin.Reloc{
			Type:   r.typ,
			Addend: r.addend,
			VAddr:  r.off,
			Bits:   bits(f),
		}
		rel.PAddr, _ = offset(f, r.off)
		if imp, ok := imports[r.name]; ok {
			rel.Import = imp
		}
		out = append(out, rel)
	}
	return out
}

func (p *Plugin) Maps(o *bin.Object) []*bin.Map {
	f := file(o)
	if f == nil {
		return nil
	}
	var out []*bin.Map
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		m := &bin.Map{Addr: prog.Vaddr, Size: prog.Memsz}
		if prog.Flags&elf.PF_R != 0 {
			m.Perm |= bin.PermR
		}
		if prog.Flags&elf.PF_W != 0 {
			m.Perm |= bin.PermW
		}
		if prog.Flags&elf.PF_X != 0 {
			m.Perm |= bin.PermX
		}
		out = append(out, m)
	}
	return out
}

// RegState returns the descriptor of the first NT_PRSTATUS note.
func (p *Plugin) RegState(o *bin.Object) []byte {
	f := file(o)
	if f == nil {
		return nil
	}
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_NOTE {
			continue
		}
		data := make([]byte, prog.Filesz)
		if _, err := prog.ReadAt(data, 0); err != nil {
			continue
		}
		if desc := findNote(data, f.ByteOrder, ntPRStatus); desc != nil {
			return desc
		}
	}
	return nil
}

func findNote(data []byte, order binary.ByteOrder, typ uint32) []byte {
	align := func(n uint32) uint64 { return (uint64(n) + 3) &^ 3 }
	for len(data) >= 12 {
		namesz := order.Uint32(data[0:])
		descsz := order.Uint32(data[4:])
		ntype := order.Uint32(data[8:])
		start := 12 + align(namesz)
		end := start + uint64(descsz)
		if end > uint64(len(data)) {
			return nil
		}
		if ntype == typ {
			return data[start:end]
		}
		next := start + align(descsz)
		if next > uint64(len(data)) {
			return nil
		}
		data = data[next:]
	}
	return nil
}
