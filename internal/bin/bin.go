// Package bin builds binary objects from format plugins: it allocates ids,
// dispatches to the plugin's load capability, populates every derived
// collection, and tracks which object and file are current.
package bin

import (
	"sync"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"binobj/internal/buffer"
)

// Req selects which optional collections are extracted.
type Req uint32

const (
	ReqRelocs Req = 1 << iota
	ReqImports
	ReqStrings
	ReqClasses
	ReqSymbols

	ReqAll = ReqRelocs | ReqImports | ReqStrings | ReqClasses | ReqSymbols
)

// Options are the caller settings consulted while populating objects.
type Options struct {
	// MinStrLen overrides the plugin's minimum string length when > 0.
	MinStrLen int
	// Filter renames duplicate symbol, section and class names.
	Filter bool
	// Debase64 decodes base64-encoded strings in place.
	Debase64 bool
	// RawStr makes the fallback scanner read the whole object instead of
	// its data sections.
	RawStr bool
	Rules  Req
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Filter: true, Rules: ReqAll}
}

// Bin is the registry of opened files.
type Bin struct {
	Options

	ids   IDAllocator
	mu    sync.Mutex
	files []*File
	cur   *File
}

// New returns an empty registry. A nil ids uses a fresh IDPool.
func New(opts Options, ids IDAllocator) *Bin {
	if ids == nil {
		ids = NewIDPool(0, NoID)
	}
	return &Bin{Options: opts, ids: ids}
}

// NewFile registers a file over buf without loading anything into it.
func (b *Bin) NewFile(name string, buf buffer.Buffer) (*File, error) {
	id, ok := b.ids.Grab()
	if !ok {
		return nil, ErrAllocationExhausted
	}
	bf := newFile(b, id, name, buf)
	b.mu.Lock()
	b.files = append(b.files, bf)
	b.mu.Unlock()
	return bf, nil
}

// Open registers a file and constructs its objects with p. Plugins that
// implement Extractor get one object per slice; the others one object over
// the whole view. Slices that fail to load are skipped. If none loads, the
// file is unregistered and the first error is returned.
func (b *Bin) Open(name string, buf buffer.Buffer, p Plugin, baseAddr, loadAddr uint64) (*File, error) {
	bf, err := b.NewFile(name, buf)
	if err != nil {
		return nil, err
	}

	var size uint64
	if buf != nil {
		size = buf.Size()
	}
	parts := []Slice{{Offset: 0, Size: size}}
	if x, ok := p.(Extractor); ok && buf != nil {
		if xs := x.Slices(buf); len(xs) > 0 {
			parts = xs
		}
	}

	var first error
	for _, s := range parts {
		if _, err := NewObject(bf, p, baseAddr, loadAddr, s.Offset, s.Size); err != nil {
			log.WithFields(log.Fields{
				"file":   name,
				"plugin": p.Name(),
				"offset": s.Offset,
				"arch":   s.Arch,
			}).WithError(err).Debug("slice skipped")
			if first == nil {
				first = err
			}
		}
	}
	if len(bf.Objects()) == 0 {
		b.removeFile(bf)
		if first == nil {
			first = ErrLoadFailed
		}
		return nil, errors.Wrapf(first, "failed to open %s", name)
	}
	return bf, nil
}

// Files returns the registered files in registration order.
func (b *Bin) Files() []*File {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.files)
}

// File returns the file with the given id, or nil.
func (b *Bin) File(id uint32) *File {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := slices.IndexFunc(b.files, func(bf *File) bool { return bf.ID == id }); i >= 0 {
		return b.files[i]
	}
	return nil
}

// FileByObjectID returns the file owning the object with the given id, or nil.
func (b *Bin) FileByObjectID(id uint32) *File {
	for _, bf := range b.Files() {
		if bf.ObjectByID(id) != nil {
			return bf
		}
	}
	return nil
}

// Cur returns the current file.
func (b *Bin) Cur() *File {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cur
}

// CurObject returns the current object of the current file.
func (b *Bin) CurObject() *Object {
	if bf := b.Cur(); bf != nil {
		return bf.Cur()
	}
	return nil
}

// SetCur makes o the current object of bf and bf the current file.
func (b *Bin) SetCur(bf *File, o *Object) bool {
	if bf == nil || o == nil {
		return false
	}
	bf.setCur(o)
	b.mu.Lock()
	b.cur = bf
	b.mu.Unlock()
	return true
}

// DeleteObject removes an object and promotes the first remaining object of
// its file to current. Either id may be NoID: with only objID the owning file
// is searched for, with only fileID the file's current object is removed.
// A file left with no objects is unregistered and closed. It returns whether
// a remaining object was promoted.
func (b *Bin) DeleteObject(fileID, objID uint32) bool {
	var bf *File
	var o *Object
	switch {
	case fileID == NoID:
		if bf = b.FileByObjectID(objID); bf != nil {
			o = bf.ObjectByID(objID)
		}
	case objID == NoID:
		if bf = b.File(fileID); bf != nil {
			o = bf.Cur()
		}
	default:
		if bf = b.File(fileID); bf != nil {
			o = bf.ObjectByID(objID)
		}
	}
	if bf == nil {
		return false
	}

	b.mu.Lock()
	if b.cur == bf {
		b.cur = nil
	}
	b.mu.Unlock()

	bf.setCur(nil)
	if o != nil {
		bf.removeObject(o)
	}

	promoted := false
	if objs := bf.Objects(); len(objs) > 0 {
		promoted = b.SetCur(bf, objs[0])
	}
	if o != nil && len(bf.Objects()) == 0 {
		if err := bf.Close(); err != nil {
			log.WithError(err).WithField("file", bf.Name).Warn("failed to close file")
		}
	}
	return promoted
}

func (b *Bin) removeFile(bf *File) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := slices.Index(b.files, bf); i >= 0 {
		b.files = slices.Delete(b.files, i, i+1)
	}
	if b.cur == bf {
		b.cur = nil
	}
}
