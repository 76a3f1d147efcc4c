package bin

import (
	"github.com/pkg/errors"

	"binobj/internal/buffer"
	"binobj/internal/kv"
)

// fakePlugin returns whatever its fields hold and counts capability calls.
type fakePlugin struct {
	PluginBase
	name     string
	minlen   int
	core     bool
	baddr    uint64
	hasBaddr bool
	special  map[SymRole]uint64
	entries  func() []*Addr
	fields   func() []*Field
	imports  func() []*Import
	symbols  func() []*Symbol
	sections func() []*Section
	relocs   func() []*Reloc
	strings  func() []*String
	classes  func() []*Class
	libs     []string
	info     *Info
	store    kv.Store
	regs     []byte
	maps     []*Map
	calls    map[string]int
}

func (p *fakePlugin) call(name string) {
	if p.calls == nil {
		p.calls = make(map[string]int)
	}
	p.calls[name]++
}

func (p *fakePlugin) Name() string {
	if p.name == "" {
		return "fake"
	}
	return p.name
}

func (p *fakePlugin) MinStrLen() int { return p.minlen }

func (p *fakePlugin) FileType(*Object) FileType {
	if p.core {
		return FileTypeCore
	}
	return FileTypeDefault
}

func (p *fakePlugin) BaseAddr(*Object) (uint64, bool) { return p.baddr, p.hasBaddr }

func (p *fakePlugin) SpecialSymbol(_ *Object, role SymRole) *Addr {
	if v, ok := p.special[role]; ok {
		return &Addr{VAddr: v, PAddr: v}
	}
	return nil
}

func (p *fakePlugin) Entries(*Object) []*Addr {
	p.call("entries")
	if p.entries == nil {
		return nil
	}
	return p.entries()
}

func (p *fakePlugin) Fields(*Object) []*Field {
	if p.fields == nil {
		return nil
	}
	return p.fields()
}

func (p *fakePlugin) Imports(*Object) []*Import {
	p.call("imports")
	if p.imports == nil {
		return nil
	}
	return p.imports()
}

func (p *fakePlugin) Symbols(*Object) []*Symbol {
	p.call("symbols")
	if p.symbols == nil {
		return nil
	}
	return p.symbols()
}

func (p *fakePlugin) Sections(*Object) []*Section {
	p.call("sections")
	if p.sections == nil {
		return nil
	}
	return p.sections()
}

func (p *fakePlugin) Relocs(*Object) []*Reloc {
	p.call("relocs")
	if p.relocs == nil {
		return nil
	}
	return p.relocs()
}

func (p *fakePlugin) Strings(*Object) []*String {
	p.call("strings")
	if p.strings == nil {
		return nil
	}
	return p.strings()
}

func (p *fakePlugin) Classes(*Object) []*Class {
	p.call("classes")
	if p.classes == nil {
		return nil
	}
	return p.classes()
}

func (p *fakePlugin) Libs(*Object) []string { return p.libs }
func (p *fakePlugin) Info(*Object) *Info    { return p.info }
func (p *fakePlugin) KV(*Object) kv.Store   { return p.store }

func (p *fakePlugin) RegState(*Object) []byte {
	p.call("regstate")
	return p.regs
}

func (p *fakePlugin) Maps(*Object) []*Map {
	p.call("maps")
	return p.maps
}

type bufferPlugin struct {
	fakePlugin
	err error
}

func (p *bufferPlugin) LoadBuffer(o *Object, buf buffer.Buffer, loadAddr uint64, store kv.Store) (any, error) {
	p.call("loadbuffer")
	if p.err != nil {
		return nil, p.err
	}
	return "state", nil
}

type bytesPlugin struct {
	fakePlugin
	got []byte
}

func (p *bytesPlugin) LoadBytes(o *Object, b []byte, loadAddr uint64, store kv.Store) (any, error) {
	p.call("loadbytes")
	p.got = append([]byte(nil), b...)
	return len(b), nil
}

type legacyPlugin struct {
	fakePlugin
	ok     bool
	curWas *Object
}

func (p *legacyPlugin) Load(ctx *LoadContext) bool {
	p.call("load")
	p.curWas = ctx.File.Cur()
	return p.ok
}

// allLoaders implements every load capability.
type allLoaders struct {
	bufferPlugin
}

func (p *allLoaders) LoadBytes(o *Object, b []byte, loadAddr uint64, store kv.Store) (any, error) {
	p.call("loadbytes")
	return nil, nil
}

func (p *allLoaders) Load(ctx *LoadContext) bool {
	p.call("load")
	return true
}

// splitPlugin extracts fixed slices from its input.
type splitPlugin struct {
	bufferPlugin
	parts []Slice
	// fail makes LoadBuffer fail for objects at these offsets.
	fail map[uint64]bool
}

func (p *splitPlugin) Slices(buffer.Buffer) []Slice { return p.parts }

func (p *splitPlugin) LoadBuffer(o *Object, buf buffer.Buffer, loadAddr uint64, store kv.Store) (any, error) {
	if p.fail[o.BaseOffset] {
		return nil, errors.New("bad slice")
	}
	return o.BaseOffset, nil
}

func (p *splitPlugin) Info(o *Object) *Info {
	for _, s := range p.parts {
		if s.Offset == o.BaseOffset {
			return &Info{Arch: s.Arch, Bits: s.Bits, File: "fat"}
		}
	}
	return nil
}

// closeBuffer records whether it was closed.
type closeBuffer struct {
	buffer.Buffer
	closed bool
}

func (b *closeBuffer) Close() error {
	b.closed = true
	return nil
}

// fixedIDs hands out a fixed list of ids.
type fixedIDs struct {
	ids []uint32
}

func (f *fixedIDs) Grab() (uint32, bool) {
	if len(f.ids) == 0 {
		return 0, false
	}
	id := f.ids[0]
	f.ids = f.ids[1:]
	return id, true
}

func newTestFile(opts Options, data []byte) (*Bin, *File) {
	b := New(opts, nil)
	var buf buffer.Buffer
	if data != nil {
		buf = buffer.New(data)
	}
	bf, err := b.NewFile("test", buf)
	if err != nil {
		panic(err)
	}
	return b, bf
}
