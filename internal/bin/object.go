package bin

import (
	"fmt"
	"math"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"binobj/internal/buffer"
	"binobj/internal/kv"
)

// Object is one loaded binary image and every collection derived from it.
type Object struct {
	ID     uint32
	File   *File
	Plugin Plugin
	// BinObj is the plugin's private state returned by its loader.
	BinObj any

	// ObjSize is the requested size when the file's view covers it, else 0.
	ObjSize       uint64
	Size          uint64
	BaseOffset    uint64
	BaseAddr      uint64
	// BaseAddrShift is the difference between the requested base address and
	// the one the plugin reported.
	BaseAddrShift uint64
	LoadAddr      uint64

	SpecialSymbols [SymLast]*Addr
	Entries        []*Addr
	Fields         []*Field
	Imports        []*Import
	Symbols        []*Symbol
	Libs           []string
	Sections       []*Section
	Relocs         []*Reloc
	Strings        []*String
	Classes        []*Class
	Lines          []*LineInfo
	Maps           []*Map
	Mem            []*Mem
	RegState       []byte
	Info           *Info
	Lang           Lang

	KV kv.Store

	requestedBaseAddr uint64
	// sectionShift is how far section paddrs were moved by the load address.
	sectionShift      uint64
	methodLabels      map[string]string
}

// NewObject constructs an object for the range [offset, offset+size) of bf's
// view with plugin p, populates it and makes it current.
//
// The load capability is chosen in order: LoadBuffer when the file has a
// view, LoadBytes when the view reaches offset, then Load. A plugin with
// none of them yields ErrUnsupportedPlugin.
func NewObject(bf *File, p Plugin, baseAddr, loadAddr, offset, size uint64) (*Object, error) {
	if bf == nil || p == nil {
		return nil, errors.New("object needs a file and a plugin")
	}
	view := bf.Buf
	o := &Object{
		File:              bf,
		Plugin:            p,
		BaseOffset:        offset,
		requestedBaseAddr: baseAddr,
	}
	if baseAddr != NoAddr {
		o.BaseAddr = baseAddr
	}
	if buffer.Covers(view, offset, size) {
		o.ObjSize = size
	}
	if loadAddr != NoAddr {
		o.LoadAddr = loadAddr
	}

	id, ok := bf.bin.ids.Grab()
	if !ok {
		return nil, ErrAllocationExhausted
	}
	o.ID = id
	o.KV = kv.New()

	hasView := view != nil && view.Bytes() != nil
	plog := log.WithField("plugin", p.Name())

	if l, ok := p.(BufferLoader); ok && hasView {
		state, err := l.LoadBuffer(o, view, loadAddr, bf.KV())
		if err != nil {
			o.free()
			return nil, errors.Wrapf(ErrLoadFailed, "%s: %v", p.Name(), err)
		}
		o.BinObj = state
	} else if l, ok := p.(BytesLoader); ok && hasView && offset <= view.Size() {
		plog.Warn("plugin should implement LoadBuffer instead of LoadBytes")
		state, err := l.LoadBytes(o, buffer.Slice(view, offset, size), loadAddr, bf.KV())
		if err != nil {
			o.free()
			return nil, errors.Wrapf(ErrLoadFailed, "%s: %v", p.Name(), err)
		}
		o.BinObj = state
	} else if l, ok := p.(Loader); ok {
		plog.Warn("plugin should implement LoadBuffer instead of Load")
		old := bf.Cur()
		bf.setCur(o)
		if !l.Load(&LoadContext{File: bf, Object: o, LoadAddr: loadAddr}) {
			bf.setCur(old)
			o.free()
			return nil, errors.Wrap(ErrLoadFailed, p.Name())
		}
		bf.SetNamespace("info", o.KV)
		o.ObjSize = size
	} else {
		plog.Warn("plugin has no load method")
		o.free()
		return nil, errors.Wrap(ErrUnsupportedPlugin, p.Name())
	}

	bf.PopulateItems(o)
	bf.addObject(o)
	return o, nil
}

// PopulateItems queries every capability of o's plugin and fills o's
// collections. bf's current object is o for the duration of the call.
func (bf *File) PopulateItems(o *Object) bool {
	if o == nil || o.Plugin == nil {
		return false
	}
	p := o.Plugin
	var opts Options
	if bf.bin != nil {
		opts = bf.bin.Options
	}
	minlen := opts.MinStrLen
	if minlen <= 0 {
		minlen = p.MinStrLen()
	}

	old := bf.Cur()
	bf.setCur(o)
	defer bf.setCur(old)

	if p.FileType(o) == FileTypeCore {
		if rs := p.RegState(o); rs != nil {
			o.RegState = rs
		}
		if maps := p.Maps(o); maps != nil {
			o.Maps = maps
		}
	}
	if baddr, ok := p.BaseAddr(o); ok {
		o.BaseAddr = baddr
		o.SetBaseAddr(o.requestedBaseAddr)
	}
	if boff, ok := p.BaseOffset(o); ok {
		o.BaseOffset = boff
	}
	if sz, ok := p.Size(o); ok {
		o.Size = sz
	}
	for role := SymRole(0); role < SymLast; role++ {
		if a := p.SpecialSymbol(o, role); a != nil {
			a.PAddr += o.LoadAddr
			o.SpecialSymbols[role] = a
		}
	}
	if entries := p.Entries(o); entries != nil {
		o.Entries = entries
		rebase(o, o.Entries)
	}
	if fields := p.Fields(o); fields != nil {
		o.Fields = fields
		rebase(o, o.Fields)
	}
	if imports := p.Imports(o); imports != nil {
		o.Imports = imports
		rebase(o, o.Imports)
	}
	if syms := p.Symbols(o); syms != nil {
		o.Symbols = syms
		rebase(o, o.Symbols)
		if opts.Filter {
			filterSymbols(o.Symbols)
		}
	}
	o.Info = p.Info(o)
	if libs := p.Libs(o); libs != nil {
		o.Libs = libs
	}
	if o.Sections == nil {
		if sections := p.Sections(o); sections != nil {
			o.Sections = sections
			rebase(o, o.Sections)
			o.sectionShift = o.LoadAddr
			if opts.Filter {
				filterSections(o.Sections)
			}
		}
	}
	if opts.Rules&(ReqRelocs|ReqImports) != 0 {
		if relocs := p.Relocs(o); relocs != nil {
			o.Relocs = relocs
			rebase(o, o.Relocs)
		}
	}
	if opts.Rules&ReqStrings != 0 {
		strs := p.Strings(o)
		if strs == nil {
			strs = ScanStrings(o, minlen, opts.RawStr)
		}
		if opts.Debase64 {
			RefineStrings(strs)
		}
		o.Strings = strs
		rebase(o, o.Strings)
	}

	swift := isSwift(o)
	if opts.Rules&ReqClasses != 0 {
		classes := p.Classes(o)
		o.Classes = classes
		if classes == nil || swift {
			if derived := DeriveClasses(o); derived != nil {
				o.Classes = derived
			}
		}
		if opts.Filter {
			filterClasses(o.Classes)
		}
		if len(o.Classes) > 0 && o.methodLabels == nil {
			o.methodLabels = make(map[string]string)
			for _, c := range o.Classes {
				for _, m := range c.Methods {
					o.methodLabels[fmt.Sprintf("0x%08x", m.VAddr)] = fmt.Sprintf("method.%s.%s", c.Name, m.Name)
				}
			}
		}
	}
	if lines := p.Lines(o); lines != nil {
		o.Lines = lines
	}
	if store := p.KV(o); store != nil && store != o.KV {
		prev := o.KV
		o.KV = store
		if ns, ok := bf.Namespace("info"); ok && ns == prev {
			bf.SetNamespace("info", store)
		}
		if prev != nil {
			prev.Close()
		}
	}
	if mem := p.Mem(o); mem != nil {
		o.Mem = mem
	}
	if opts.Rules&(ReqSymbols|ReqImports) != 0 {
		if swift {
			o.Lang = LangSwift
		} else {
			o.Lang = DetectLang(o)
		}
	}
	return true
}

// SetBaseAddr records the shift from requested to the plugin's reported
// base address. A requested NoAddr leaves the shift untouched.
func (o *Object) SetBaseAddr(requested uint64) {
	if requested != NoAddr {
		o.BaseAddrShift = requested - o.BaseAddr
	}
}

// BaseAddress returns the effective base address: the reported one plus the
// requested shift.
func (o *Object) BaseAddress() uint64 {
	return o.BaseAddr + o.BaseAddrShift
}

// Bytes returns the object's slice of the file's view.
func (o *Object) Bytes() []byte {
	if o.File == nil {
		return nil
	}
	size := o.ObjSize
	if size == 0 {
		size = math.MaxUint64
	}
	return buffer.Slice(o.File.Buf, o.BaseOffset, size)
}

// MethodLabel returns the "method.<class>.<name>" label of the class method
// at vaddr.
func (o *Object) MethodLabel(vaddr uint64) (string, bool) {
	l, ok := o.methodLabels[fmt.Sprintf("0x%08x", vaddr)]
	return l, ok
}

func (o *Object) free() {
	if o == nil {
		return
	}
	if d, ok := o.Plugin.(Destroyer); ok && o.BinObj != nil {
		d.Destroy(o)
	}
	o.BinObj = nil
	if o.KV != nil {
		o.KV.Close()
	}
}
