// Package pe adapts github.com/saferwall/pe to the bin plugin capabilities.
// DLLs wrapped in an sRDI bootstrap are exposed as a slice of the container.
package pe

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/saferwall/pe"

	"binobj/internal/bin"
	"binobj/internal/buffer"
	"binobj/internal/common"
	"binobj/internal/kv"
)

const (
	machineI386  = 0x14c
	machineARM   = 0x1c0
	machineARMNT = 0x1c4
	machineAMD64 = 0x8664
	machineARM64 = 0xaa64

	charDebugStripped = 0x0200
	charDLL           = 0x2000

	scnCode        = 0x00000020
	scnInitialized = 0x00000040
	scnExecute     = 0x20000000
	scnRead        = 0x40000000
	scnWrite       = 0x80000000

	relBasedAbsolute = 0
)

type Plugin struct {
	bin.PluginBase
}

func New() *Plugin {
	return &Plugin{}
}

// Check reports whether b is a PE image or an sRDI-wrapped DLL.
func Check(b []byte) bool {
	if len(b) >= 2 && b[0] == 'M' && b[1] == 'Z' {
		return true
	}
	_, ok := parseSRDI(b)
	return ok
}

func (p *Plugin) Name() string   { return "pe" }
func (p *Plugin) MinStrLen() int { return 5 }

// Slices returns the embedded DLL of an sRDI container, or nil.
func (p *Plugin) Slices(buf buffer.Buffer) []bin.Slice {
	h, ok := parseSRDI(buf.Bytes())
	if !ok {
		return nil
	}
	return []bin.Slice{{
		Offset: uint64(h.DLLOffset),
		Size:   uint64(h.DLLSize),
		Arch:   common.ArchToString(h.Arch),
		Bits:   h.Arch.Bits(),
	}}
}

func (p *Plugin) LoadBuffer(o *bin.Object, buf buffer.Buffer, loadAddr uint64, store kv.Store) (any, error) {
	f, err := pe.NewBytes(o.Bytes(), &pe.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "unable to open PE")
	}
	if err := f.Parse(); err != nil {
		return nil, errors.Wrap(err, "unable to parse PE")
	}
	o.KV.Set("pe.machine", machineName(uint16(f.NtHeader.FileHeader.Machine)))
	kv.SetUint64(o.KV, "pe.sections", uint64(len(f.Sections)))

	if arch, ok := pe2shcArch(o.Bytes()); ok {
		o.KV.Set("pe.loader", "pe_to_shellcode")
		o.KV.Set("pe.loader.arch", common.ArchToString(arch))
	}
	if h, ok := parseSRDI(buf.Bytes()); ok && uint64(h.DLLOffset) == o.BaseOffset {
		o.KV.Set("pe.loader", "srdi")
		o.KV.Set("pe.srdi.hash", fmt.Sprintf("0x%x", h.FunctionHash))
		o.KV.Set("pe.srdi.flags", h.Flags.String())
		o.KV.Set("pe.srdi.userdata", string(h.UserData))
		var names []string
		for _, e := range f.Export.Functions {
			names = append(names, e.Name)
		}
		if fn, ok := srdiTarget(names, h.FunctionHash); ok {
			o.KV.Set("pe.srdi.function", fn)
		}
	}
	return f, nil
}

func file(o *bin.Object) *pe.File {
	f, _ := o.BinObj.(*pe.File)
	return f
}

type optional struct {
	entry     uint32
	imageBase uint64
	imageSize uint32
	magic     uint16
}

func optionalHeader(f *pe.File) (optional, bool) {
	switch oh := f.NtHeader.OptionalHeader.(type) {
	case pe.ImageOptionalHeader32:
		return optional{oh.AddressOfEntryPoint, uint64(oh.ImageBase), oh.SizeOfImage, oh.Magic}, true
	case pe.ImageOptionalHeader64:
		return optional{oh.AddressOfEntryPoint, oh.ImageBase, oh.SizeOfImage, oh.Magic}, true
	}
	return optional{}, false
}

func arch(machine uint16) common.CPUArch {
	switch machine {
	case machineAMD64:
		return common.AMD64
	case machineI386:
		return common.X86
	case machineARM64:
		return common.ARM64
	case machineARM, machineARMNT:
		return common.ARM
	}
	return common.Unknown
}

func machineName(machine uint16) string {
	switch machine {
	case machineAMD64:
		return "AMD64"
	case machineI386:
		return "i386"
	case machineARM64:
		return "ARM64"
	case machineARM:
		return "ARM"
	case machineARMNT:
		return "ARMNT"
	}
	return fmt.Sprintf("0x%x", machine)
}

func bits(f *pe.File) int {
	if f.Is64 {
		return 64
	}
	return 32
}

func (p *Plugin) BaseAddr(o *bin.Object) (uint64, bool) {
	f := file(o)
	if f == nil {
		return 0, false
	}
	oh, ok := optionalHeader(f)
	if !ok {
		return 0, false
	}
	return oh.imageBase, true
}

func (p *Plugin) Size(o *bin.Object) (uint64, bool) {
	return uint64(len(o.Bytes())), true
}

func entry(f *pe.File) *bin.Addr {
	oh, ok := optionalHeader(f)
	if !ok || oh.entry == 0 {
		return nil
	}
	lfanew := uint64(f.DOSHeader.AddressOfNewEXEHeader)
	return &bin.Addr{
		VAddr: oh.imageBase + uint64(oh.entry),
		PAddr: uint64(f.GetOffsetFromRva(oh.entry)),
		HAddr: lfanew + 4 + 20 + 16,
		Bits:  bits(f),
	}
}

func (p *Plugin) SpecialSymbol(o *bin.Object, role bin.SymRole) *bin.Addr {
	f := file(o)
	if f == nil || role != bin.SymEntry {
		return nil
	}
	return entry(f)
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

func (p *Plugin) Fields(o *bin.Object) []*bin.Field {
	f := file(o)
	if f == nil {
		return nil
	}
	lfanew := uint64(f.DOSHeader.AddressOfNewEXEHeader)
	return []*bin.Field{
		{PAddr: 0, Size: 2, Name: "e_magic", Type: "uint16_t"},
		{PAddr: 0x3c, Size: 4, Name: "e_lfanew", Type: "uint32_t", Comment: fmt.Sprintf("0x%x", lfanew)},
		{PAddr: lfanew, Size: 4, Name: "Signature", Type: "uint32_t"},
		{PAddr: lfanew + 4, Size: 2, Name: "Machine", Type: "uint16_t", Comment: machineName(uint16(f.NtHeader.FileHeader.Machine))},
	}
}

func (p *Plugin) Imports(o *bin.Object) []*bin.Import {
	f := file(o)
	if f == nil || len(f.Imports) == 0 {
		return nil
	}
	var out []*bin.Import
	for _, imp := range f.Imports {
		for _, fn := range imp.Functions {
			name := fn.Name
			if fn.ByOrdinal {
				name = fmt.Sprintf("Ordinal_%d", fn.Ordinal)
			}
			out = append(out, &bin.Import{
				Name:    name,
				Libname: strings.ToLower(imp.Name),
				Bind:    "NONE",
				Type:    "FUNC",
				Ordinal: uint32(len(out)),
				PAddr:   uint64(f.GetOffsetFromRva(fn.ThunkRVA)),
			})
		}
	}
	return out
}

// Symbols are the exported functions.
func (p *Plugin) Symbols(o *bin.Object) []*bin.Symbol {
	f := file(o)
	if f == nil || len(f.Export.Functions) == 0 {
		return nil
	}
	oh, _ := optionalHeader(f)
	var out []*bin.Symbol
	for _, e := range f.Export.Functions {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("Ordinal_%d", e.Ordinal)
		}
		out = append(out, &bin.Symbol{
			Name:    name,
			DName:   name,
			Bind:    "GLOBAL",
			Type:    "FUNC",
			VAddr:   oh.imageBase + uint64(e.FunctionRVA),
			PAddr:   uint64(f.GetOffsetFromRva(e.FunctionRVA)),
			Ordinal: e.Ordinal,
		})
	}
	return out
}

func (p *Plugin) Info(o *bin.Object) *bin.Info {
	f := file(o)
	if f == nil {
		return nil
	}
	fh := f.NtHeader.FileHeader
	machine := uint16(fh.Machine)
	info := &bin.Info{
		Type:     "EXEC (Executable file)",
		Class:    "PE32",
		OS:       "windows",
		Machine:  machineName(machine),
		Arch:     common.ArchToString(arch(machine)),
		Bits:     bits(f),
		HasVA:    true,
		Stripped: uint16(fh.Characteristics)&charDebugStripped != 0,
	}
	if uint16(fh.Characteristics)&charDLL != 0 {
		info.Type = "DLL (Dynamic Link Library)"
	}
	if f.Is64 {
		info.Class = "PE32+"
	}
	if o.File != nil {
		info.File = o.File.Name
	}
	return info
}

func (p *Plugin) Libs(o *bin.Object) []string {
	f := file(o)
	if f == nil || len(f.Imports) == 0 {
		return nil
	}
	libs := make([]string, 0, len(f.Imports))
	for _, imp := range f.Imports {
		libs = append(libs, strings.ToLower(imp.Name))
	}
	return libs
}

func (p *Plugin) Sections(o *bin.Object) []*bin.Section {
	f := file(o)
	if f == nil || len(f.Sections) == 0 {
		return nil
	}
	oh, _ := optionalHeader(f)
	out := make([]*bin.Section, 0, len(f.Sections))
	for _, s := range f.Sections {
		h := s.Header
		var perm bin.Perm
		if h.Characteristics&scnRead != 0 {
			perm |= bin.PermR
		}
		if h.Characteristics&scnWrite != 0 {
			perm |= bin.PermW
		}
		if h.Characteristics&scnExecute != 0 {
			perm |= bin.PermX
		}
		out = append(out, &bin.Section{
			Name:   s.NameString(),
			Size:   uint64(h.SizeOfRawData),
			VSize:  uint64(h.VirtualSize),
			VAddr:  oh.imageBase + uint64(h.VirtualAddress),
			PAddr:  uint64(h.PointerToRawData),
			Perm:   perm,
			IsData: h.Characteristics&scnInitialized != 0 && h.Characteristics&(scnCode|scnExecute) == 0,
		})
	}
	return out
}

// Relocs lists the base relocations, skipping block padding.
func (p *Plugin) Relocs(o *bin.Object) []*bin.Reloc {
	f := file(o)
	if f == nil || len(f.Relocations) == 0 {
		return nil
	}
	oh, _ := optionalHeader(f)
	var out []*bin.Reloc
	for _, block := range f.Relocations {
		for _, e := range block.Entries {
			if uint32(e.Type) == relBasedAbsolute {
				continue
			}
			rva := block.Data.VirtualAddress + uint32(e.Offset)
			out = append(out, &bin.Reloc{
				Type:  uint32(e.Type),
				VAddr: oh.imageBase + uint64(rva),
				PAddr: uint64(f.GetOffsetFromRva(rva)),
				Bits:  bits(f),
			})
		}
	}
	return out
}

// Maps describes the image as loaded at its preferred base.
func (p *Plugin) Maps(o *bin.Object) []*bin.Map {
	f := file(o)
	if f == nil {
		return nil
	}
	oh, ok := optionalHeader(f)
	if !ok || oh.imageSize == 0 {
		return nil
	}
	return []*bin.Map{{Addr: oh.imageBase, Size: uint64(oh.imageSize), Perm: bin.PermR, File: "image"}}
}
