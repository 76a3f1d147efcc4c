// Package macho adapts github.com/Binject/debug/macho to the bin plugin
// capabilities. Universal binaries yield one object per architecture.
package macho

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/Binject/debug/macho"
	"github.com/blacktop/go-macho/pkg/swift"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"binobj/internal/bin"
	"binobj/internal/buffer"
	"binobj/internal/common"
	"binobj/internal/kv"
)

const (
	lcMain       = 0x80000028
	typeCore     = macho.Type(4)
	sectionType  = 0xff
	sZeroFill    = 0x1
	sCStrings    = 0x2
	nStab        = 0xe0
	nType        = 0x0e
	nUndf        = 0x0
	demangleSize = 4096
)

type Plugin struct {
	bin.PluginBase
	demangled *lru.Cache[string, string]
}

func New() *Plugin {
	c, _ := lru.New[string, string](demangleSize)
	return &Plugin{demangled: c}
}

// Check reports whether b starts with a thin or universal Mach-O magic.
func Check(b []byte) bool {
	if len(b) < 8 {
		return false
	}
	switch binary.LittleEndian.Uint32(b) {
	case macho.Magic32, macho.Magic64:
		return true
	}
	switch binary.BigEndian.Uint32(b) {
	case macho.Magic32, macho.Magic64:
		return true
	case macho.MagicFat:
		// java class files share the magic; they carry a version here
		n := binary.BigEndian.Uint32(b[4:])
		return n > 0 && n < 20
	}
	return false
}

func (p *Plugin) Name() string   { return "mach0" }
func (p *Plugin) MinStrLen() int { return 4 }

// Slices lists the architectures of a universal binary, or nil for a thin one.
func (p *Plugin) Slices(buf buffer.Buffer) []bin.Slice {
	ff, err := macho.NewFatFile(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil
	}
	defer ff.Close()
	out := make([]bin.Slice, 0, len(ff.Arches))
	for _, fa := range ff.Arches {
		a := arch(fa.Cpu)
		out = append(out, bin.Slice{
			Offset: uint64(fa.Offset),
			Size:   uint64(fa.Size),
			Arch:   common.ArchToString(a),
			Bits:   a.Bits(),
		})
	}
	return out
}

func (p *Plugin) LoadBuffer(o *bin.Object, buf buffer.Buffer, loadAddr uint64, store kv.Store) (any, error) {
	f, err := macho.NewFile(bytes.NewReader(o.Bytes()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Mach-O")
	}
	o.KV.Set("mach0.cpu", f.Cpu.String())
	o.KV.Set("mach0.type", f.Type.String())
	kv.SetUint64(o.KV, "mach0.ncmds", uint64(f.Ncmd))
	return f, nil
}

func (p *Plugin) Destroy(o *bin.Object) {
	if f := file(o); f != nil {
		f.Close()
	}
}

func file(o *bin.Object) *macho.File {
	f, _ := o.BinObj.(*macho.File)
	return f
}

func arch(c macho.Cpu) common.CPUArch {
	switch c {
	case macho.CpuAmd64:
		return common.AMD64
	case macho.Cpu386:
		return common.X86
	case macho.CpuArm64:
		return common.ARM64
	case macho.CpuArm:
		return common.ARM
	case macho.CpuPpc64:
		return common.PPC64
	case macho.CpuPpc:
		return common.PPC
	}
	return common.Unknown
}

// offset maps a virtual address to its file offset through the segments.
func offset(f *macho.File, vaddr uint64) (uint64, bool) {
	for _, l := range f.Loads {
		seg, ok := l.(*macho.Segment)
		if !ok {
			continue
		}
		if vaddr >= seg.Addr && vaddr-seg.Addr < seg.Filesz {
			return seg.Offset + vaddr - seg.Addr, true
		}
	}
	return 0, false
}

func (p *Plugin) FileType(o *bin.Object) bin.FileType {
	if f := file(o); f != nil && f.Type == typeCore {
		return bin.FileTypeCore
	}
	return bin.FileTypeDefault
}

func (p *Plugin) BaseAddr(o *bin.Object) (uint64, bool) {
	f := file(o)
	if f == nil {
		return 0, false
	}
	if seg := f.Segment("__TEXT"); seg != nil {
		return seg.Addr, true
	}
	return 0, false
}

func (p *Plugin) Size(o *bin.Object) (uint64, bool) {
	return uint64(len(o.Bytes())), true
}

// entry returns the LC_MAIN entry point.
func entry(f *macho.File) *bin.Addr {
	text := f.Segment("__TEXT")
	if text == nil {
		return nil
	}
	var hdr uint64 = 28
	if f.Magic == macho.Magic64 {
		hdr = 32
	}
	for _, l := range f.Loads {
		raw := l.Raw()
		if len(raw) < 16 || f.ByteOrder.Uint32(raw) != lcMain {
			continue
		}
		off := f.ByteOrder.Uint64(raw[8:])
		return &bin.Addr{VAddr: text.Addr + off, PAddr: off, HAddr: hdr + 8, Bits: arch(f.Cpu).Bits()}
	}
	return nil
}

func (p *Plugin) SpecialSymbol(o *bin.Object, role bin.SymRole) *bin.Addr {
	f := file(o)
	if f == nil {
		return nil
	}
	switch role {
	case bin.SymEntry:
		return entry(f)
	case bin.SymMain:
		if f.Symtab == nil {
			return nil
		}
		for _, s := range f.Symtab.Syms {
			if s.Name == "_main" && s.Type&nType != nUndf {
				paddr, _ := offset(f, s.Value)
				return &bin.Addr{VAddr: s.Value, PAddr: paddr}
			}
		}
	}
	return nil
}

func (p *Plugin) Entries(o *bin.Object) []*bin.Addr {
	f := file(o)
	if f == nil {
		return nil
	}
	if e := entry(f); e != nil {
		return []*bin.Addr{e}
	}
	return nil
}

func (p *Plugin) Imports(o *bin.Object) []*bin.Import {
	f := file(o)
	if f == nil {
		return nil
	}
	names, err := f.ImportedSymbols()
	if err != nil || len(names) == 0 {
		return nil
	}
	out := make([]*bin.Import, 0, len(names))
	for i, n := range names {
		out = append(out, &bin.Import{
			Name:    strings.TrimPrefix(n, "_"),
			Bind:    "GLOBAL",
			Type:    "FUNC",
			Ordinal: uint32(i),
		})
	}
	return out
}

func (p *Plugin) Symbols(o *bin.Object) []*bin.Symbol {
	f := file(o)
	if f == nil || f.Symtab == nil {
		return nil
	}
	var out []*bin.Symbol
	for _, s := range f.Symtab.Syms {
		if s.Name == "" || s.Type&nStab != 0 || s.Type&nType == nUndf {
			continue
		}
		sym := &bin.Symbol{
			Name:    s.Name,
			DName:   s.Name,
			VAddr:   s.Value,
			Bind:    "LOCAL",
			Type:    "FUNC",
			Ordinal: uint32(len(out)),
		}
		if s.Type&0x01 != 0 {
			sym.Bind = "GLOBAL"
		}
		sym.PAddr, _ = offset(f, s.Value)
		p.classify(sym)
		out = append(out, sym)
	}
	return out
}

// classify fills in the display and class names of Swift and Objective-C
// symbols.
func (p *Plugin) classify(sym *bin.Symbol) {
	if cls, _, ok := objcMethod(sym.Name); ok {
		sym.Classname = cls
		return
	}
	if !isSwiftMangled(sym.Name) {
		return
	}
	dn, ok := p.demangled.Get(sym.Name)
	if !ok {
		d, err := swift.Demangle(sym.Name)
		if err != nil {
			d = sym.Name
		}
		dn = swiftDisplayName(d)
		p.demangled.Add(sym.Name, dn)
	}
	sym.DName = dn
	sym.Classname = swiftClassname(dn)
}

func isSwiftMangled(name string) bool {
	for _, prefix := range []string{"_$s", "$s", "_$S", "$S", "_T0"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// swiftDisplayName rewrites accessor suffixes like ".getter : Swift.Int" to
// the ".getter_Swift.Int" form class derivation matches on.
func swiftDisplayName(dn string) string {
	for _, acc := range []string{".getter", ".setter", ".modify"} {
		dn = strings.Replace(dn, acc+" : ", acc+"_", 1)
	}
	return dn
}

// swiftClassname returns the type owning a demangled member, e.g. "Foo" for
// "main.Foo.bar() -> ()" and "main.Foo.count.getter_Swift.Int".
func swiftClassname(dn string) string {
	if i := strings.IndexAny(dn, "( "); i >= 0 {
		dn = dn[:i]
	}
	for _, acc := range []string{".getter_", ".setter_", ".modify_"} {
		if i := strings.Index(dn, acc); i >= 0 {
			dn = dn[:i]
			break
		}
	}
	parts := strings.Split(dn, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-2]
}

// objcMethod splits "-[Class selector]" into its class and selector.
func objcMethod(name string) (string, string, bool) {
	if len(name) < 6 || (name[0] != '-' && name[0] != '+') || name[1] != '[' || name[len(name)-1] != ']' {
		return "", "", false
	}
	cls, sel, ok := strings.Cut(name[2:len(name)-1], " ")
	if !ok || cls == "" || sel == "" {
		return "", "", false
	}
	return cls, sel, true
}

// Classes groups Objective-C method symbols by class.
func (p *Plugin) Classes(o *bin.Object) []*bin.Class {
	var out []*bin.Class
	byName := make(map[string]*bin.Class)
	for _, s := range o.Symbols {
		cls, _, ok := objcMethod(s.Name)
		if !ok {
			continue
		}
		c, ok := byName[cls]
		if !ok {
			c = &bin.Class{Name: cls, Index: len(out)}
			byName[cls] = c
			out = append(out, c)
		}
		c.Methods = append(c.Methods, s)
	}
	return out
}

func (p *Plugin) Info(o *bin.Object) *bin.Info {
	f := file(o)
	if f == nil {
		return nil
	}
	a := arch(f.Cpu)
	info := &bin.Info{
		Type:      f.Type.String(),
		Class:     "MACH0",
		OS:        "darwin",
		Machine:   f.Cpu.String(),
		Arch:      common.ArchToString(a),
		Bits:      a.Bits(),
		BigEndian: f.ByteOrder == binary.BigEndian,
		HasVA:     true,
		Stripped:  f.Symtab == nil,
	}
	if info.Bits == 0 {
		info.Bits = 32
		if f.Magic == macho.Magic64 {
			info.Bits = 64
		}
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
		sec := &bin.Section{
			Name:  s.Seg + "." + s.Name,
			Size:  s.Size,
			VSize: s.Size,
			VAddr: s.Addr,
			PAddr: uint64(s.Offset),
		}
		typ := s.Flags & sectionType
		if typ == sZeroFill {
			sec.Size = 0
		}
		if seg := f.Segment(s.Seg); seg != nil {
			sec.Perm = perm(seg.Prot)
		}
		sec.IsData = typ == sCStrings ||
			(typ == 0 && strings.HasPrefix(s.Seg, "__DATA")) ||
			(s.Seg == "__TEXT" && s.Name == "__const")
		out = append(out, sec)
	}
	return out
}

func perm(prot uint32) bin.Perm {
	var p bin.Perm
	if prot&1 != 0 {
		p |= bin.PermR
	}
	if prot&2 != 0 {
		p |= bin.PermW
	}
	if prot&4 != 0 {
		p |= bin.PermX
	}
	return p
}

func (p *Plugin) Relocs(o *bin.Object) []*bin.Reloc {
	f := file(o)
	if f == nil {
		return nil
	}
	var out []*bin.Reloc
	for _, s := range f.Sections {
		for _, r := range s.Relocs {
			out = append(out, &bin.Reloc{
				Type:  uint32(r.Type),
				VAddr: s.Addr + uint64(r.Addr),
				PAddr: uint64(s.Offset) + uint64(r.Addr),
				Bits:  8 << r.Len,
			})
		}
	}
	return out
}

func (p *Plugin) Maps(o *bin.Object) []*bin.Map {
	f := file(o)
	if f == nil {
		return nil
	}
	var out []*bin.Map
	for _, l := range f.Loads {
		if seg, ok := l.(*macho.Segment); ok && seg.Memsz > 0 {
			out = append(out, &bin.Map{Addr: seg.Addr, Size: seg.Memsz, Perm: perm(seg.Prot), File: seg.Name})
		}
	}
	return out
}

// Mem describes the segments the image expects to be mapped.
func (p *Plugin) Mem(o *bin.Object) []*bin.Mem {
	f := file(o)
	if f == nil {
		return nil
	}
	var out []*bin.Mem
	for _, l := range f.Loads {
		if seg, ok := l.(*macho.Segment); ok && seg.Memsz > 0 && seg.Name != "__PAGEZERO" {
			out = append(out, &bin.Mem{Name: seg.Name, Addr: seg.Addr, Size: seg.Memsz, Perm: perm(seg.Maxprot)})
		}
	}
	return out
}
