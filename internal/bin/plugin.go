package bin

import (
	"binobj/internal/buffer"
	"binobj/internal/kv"
)

// Plugin is the capability table of a format handler. Every capability is
// optional: returning nil (or false for the scalar ones) means the
// capability is not implemented, and the pipeline skips that facet.
// Embed PluginBase to get those defaults and override what the format
// supports.
//
// A plugin must also implement at least one of BufferLoader, BytesLoader or
// Loader, or construction fails with ErrUnsupportedPlugin.
type Plugin interface {
	Name() string
	// MinStrLen is the plugin's default minimum string length.
	MinStrLen() int

	FileType(o *Object) FileType
	BaseAddr(o *Object) (uint64, bool)
	BaseOffset(o *Object) (uint64, bool)
	Size(o *Object) (uint64, bool)
	SpecialSymbol(o *Object, role SymRole) *Addr

	Entries(o *Object) []*Addr
	Fields(o *Object) []*Field
	Imports(o *Object) []*Import
	Symbols(o *Object) []*Symbol
	Info(o *Object) *Info
	Libs(o *Object) []string
	Sections(o *Object) []*Section
	Relocs(o *Object) []*Reloc
	Strings(o *Object) []*String
	Classes(o *Object) []*Class
	Lines(o *Object) []*LineInfo
	// KV may return a store that replaces the object's metadata store.
	KV(o *Object) kv.Store
	Mem(o *Object) []*Mem

	// Maps and RegState are only queried for FileTypeCore objects.
	Maps(o *Object) []*Map
	RegState(o *Object) []byte
}

// BufferLoader is the preferred load capability. It receives the whole
// backing view of the file; the object's BaseOffset and ObjSize locate its
// slice. The returned value becomes the object's plugin state.
type BufferLoader interface {
	LoadBuffer(o *Object, buf buffer.Buffer, loadAddr uint64, store kv.Store) (any, error)
}

// BytesLoader is the legacy load capability. It receives only the object's
// bounds-checked slice of the view.
type BytesLoader interface {
	LoadBytes(o *Object, b []byte, loadAddr uint64, store kv.Store) (any, error)
}

// Loader is the oldest load capability: the plugin fills ctx.Object by side
// effect and reports success.
type Loader interface {
	Load(ctx *LoadContext) bool
}

// LoadContext carries the object being built into a Loader.
type LoadContext struct {
	File     *File
	Object   *Object
	LoadAddr uint64
}

// Destroyer releases plugin state when an object is freed.
type Destroyer interface {
	Destroy(o *Object)
}

// Slice locates one object inside a container file.
type Slice struct {
	Offset uint64
	Size   uint64
	Arch   string
	Bits   int
}

// Extractor is implemented by plugins whose files hold several objects, like
// universal binaries.
type Extractor interface {
	Slices(buf buffer.Buffer) []Slice
}

// PluginBase implements every Plugin capability as absent.
type PluginBase struct{}

func (PluginBase) MinStrLen() int                       { return 0 }
func (PluginBase) FileType(*Object) FileType            { return FileTypeDefault }
func (PluginBase) BaseAddr(*Object) (uint64, bool)      { return 0, false }
func (PluginBase) BaseOffset(*Object) (uint64, bool)    { return 0, false }
func (PluginBase) Size(*Object) (uint64, bool)          { return 0, false }
func (PluginBase) SpecialSymbol(*Object, SymRole) *Addr { return nil }
func (PluginBase) Entries(*Object) []*Addr              { return nil }
func (PluginBase) Fields(*Object) []*Field              { return nil }
func (PluginBase) Imports(*Object) []*Import            { return nil }
func (PluginBase) Symbols(*Object) []*Symbol            { return nil }
func (PluginBase) Info(*Object) *Info                   { return nil }
func (PluginBase) Libs(*Object) []string                { return nil }
func (PluginBase) Sections(*Object) []*Section          { return nil }
func (PluginBase) Relocs(*Object) []*Reloc              { return nil }
func (PluginBase) Strings(*Object) []*String            { return nil }
func (PluginBase) Classes(*Object) []*Class             { return nil }
func (PluginBase) Lines(*Object) []*LineInfo            { return nil }
func (PluginBase) KV(*Object) kv.Store                  { return nil }
func (PluginBase) Mem(*Object) []*Mem                   { return nil }
func (PluginBase) Maps(*Object) []*Map                  { return nil }
func (PluginBase) RegState(*Object) []byte              { return nil }
