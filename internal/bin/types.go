package bin

// NoAddr marks an unset address argument.
const NoAddr = ^uint64(0)

// FileType classifies what a plugin loaded.
type FileType int

const (
	FileTypeDefault FileType = iota
	FileTypeCore
)

// SymRole indexes the special symbol array.
type SymRole int

const (
	SymEntry SymRole = iota
	SymInit
	SymMain
	SymFini
	SymLast
)

func (r SymRole) String() string {
	switch r {
	case SymEntry:
		return "entry"
	case SymInit:
		return "init"
	case SymMain:
		return "main"
	case SymFini:
		return "fini"
	default:
		return "unknown"
	}
}

// Perm is an rwx permission mask.
type Perm uint8

const (
	PermX Perm = 1 << iota
	PermW
	PermR
)

func (p Perm) String() string {
	b := []byte("---")
	if p&PermR != 0 {
		b[0] = 'r'
	}
	if p&PermW != 0 {
		b[1] = 'w'
	}
	if p&PermX != 0 {
		b[2] = 'x'
	}
	return string(b)
}

// StringType tells how a String was recovered.
type StringType int

const (
	StringASCII StringType = iota
	StringUTF8
	StringWide
	StringBase64
)

func (t StringType) String() string {
	switch t {
	case StringASCII:
		return "ascii"
	case StringUTF8:
		return "utf8"
	case StringWide:
		return "utf16le"
	case StringBase64:
		return "base64"
	default:
		return "unknown"
	}
}

// Addr is an entry point or special symbol location.
type Addr struct {
	VAddr uint64
	PAddr uint64
	// HAddr is the file offset of the header field holding the address.
	HAddr uint64
	Bits  int
}

type Field struct {
	VAddr   uint64
	PAddr   uint64
	Size    uint64
	Name    string
	Type    string
	Comment string
	Flags   uint64
}

type Import struct {
	Name      string
	Classname string
	Libname   string
	Bind      string
	Type      string
	Ordinal   uint32
	// PAddr is the location of the import slot (PLT stub, IAT entry), if known.
	PAddr uint64
}

type Symbol struct {
	// Name is the raw (mangled) name.
	Name string
	// DName is the display (demangled) name.
	DName     string
	Classname string
	Libname   string
	Bind      string
	Type      string
	VAddr     uint64
	PAddr     uint64
	Size      uint64
	Ordinal   uint32
	// DupCount is set by name filtering to the number of earlier symbols
	// sharing Name.
	DupCount int
}

type Section struct {
	Name  string
	Size  uint64
	VSize uint64
	VAddr uint64
	// PAddr is the offset of the section data within the object's view.
	PAddr uint64
	Perm  Perm
	// IsData marks sections the fallback string scanner should read.
	IsData bool
}

type Reloc struct {
	Type   uint32
	Addend int64
	VAddr  uint64
	PAddr  uint64
	Symbol *Symbol
	Import *Import
	Bits   int
}

type String struct {
	String  string
	VAddr   uint64
	PAddr   uint64
	Ordinal uint32
	// Size is the byte length in the file, Length the number of characters.
	Size    uint64
	Length  uint64
	Type    StringType
	Section string
}

// Class groups the fields and methods recovered for one class. Methods point
// into the owning object's symbol collection; they are shared, not copied.
type Class struct {
	Name    string
	Super   string
	Index   int
	Fields  []*Field
	Methods []*Symbol
}

type LineInfo struct {
	File   string
	Line   int
	Column int
	Addr   uint64
}

// Map is a memory-map region of a core file.
type Map struct {
	Addr uint64
	Size uint64
	Perm Perm
	File string
}

// Mem describes a memory region the loaded image expects, with its mirrors.
type Mem struct {
	Name    string
	Addr    uint64
	Size    uint64
	Perm    Perm
	Mirrors []*Mem
}

// Info is the summary a plugin reports about the object.
type Info struct {
	File      string
	Type      string
	Class     string
	OS        string
	Machine   string
	Arch      string
	Bits      int
	BigEndian bool
	Stripped  bool
	HasVA     bool
	Lang      string
}

type rebaser interface {
	rebase(delta uint64)
}

func (a *Addr) rebase(d uint64)    { a.PAddr += d }
func (f *Field) rebase(d uint64)   { f.PAddr += d }
func (i *Import) rebase(d uint64)  { i.PAddr += d }
func (s *Symbol) rebase(d uint64)  { s.PAddr += d }
func (s *Section) rebase(d uint64) { s.PAddr += d }
func (r *Reloc) rebase(d uint64)   { r.PAddr += d }
func (s *String) rebase(d uint64)  { s.PAddr += d }

// rebase shifts the physical address of every item by the object's load
// address. It is applied once, right after a collection is obtained.
func rebase[T rebaser](o *Object, items []T) {
	if o.LoadAddr == 0 {
		return
	}
	for _, it := range items {
		it.rebase(o.LoadAddr)
	}
}
