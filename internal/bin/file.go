package bin

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"binobj/internal/buffer"
	"binobj/internal/kv"
)

// File is one opened input. It owns its objects and tracks the current one.
type File struct {
	ID   uint32
	Name string
	// UUID names the file's session, e.g. as the bucket its metadata is
	// saved under.
	UUID uuid.UUID
	Buf  buffer.Buffer

	bin *Bin
	kv  *kv.Memory

	mu         sync.Mutex
	closed     bool
	objs       []*Object
	cur        *Object
	namespaces map[string]kv.Store
}

func newFile(b *Bin, id uint32, name string, buf buffer.Buffer) *File {
	return &File{
		ID:         id,
		Name:       name,
		UUID:       uuid.New(),
		Buf:        buf,
		bin:        b,
		kv:         kv.New(),
		namespaces: make(map[string]kv.Store),
	}
}

// Bin returns the registry the file belongs to.
func (bf *File) Bin() *Bin {
	return bf.bin
}

// KV returns the file-level metadata store handed to loaders.
func (bf *File) KV() kv.Store {
	return bf.kv
}

// Namespace returns the store mounted under name, if any.
func (bf *File) Namespace(name string) (kv.Store, bool) {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	s, ok := bf.namespaces[name]
	return s, ok
}

// SetNamespace mounts s under name, replacing any previous store.
func (bf *File) SetNamespace(name string, s kv.Store) {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	bf.namespaces[name] = s
}

// Objects returns the file's objects in insertion order.
func (bf *File) Objects() []*Object {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	return slices.Clone(bf.objs)
}

// Cur returns the file's current object.
func (bf *File) Cur() *Object {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	return bf.cur
}

func (bf *File) setCur(o *Object) {
	bf.mu.Lock()
	bf.cur = o
	bf.mu.Unlock()
}

// ObjectByID returns the object with the given id, or nil.
func (bf *File) ObjectByID(id uint32) *Object {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	if i := slices.IndexFunc(bf.objs, func(o *Object) bool { return o.ID == id }); i >= 0 {
		return bf.objs[i]
	}
	return nil
}

// FindByArchAndBits returns the first object whose info matches arch, bits
// and name exactly.
func (bf *File) FindByArchAndBits(arch string, bits int, name string) (*Object, error) {
	for _, o := range bf.Objects() {
		if o.Info == nil {
			continue
		}
		if o.Info.Arch == arch && o.Info.Bits == bits && o.Info.File == name {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

// addObject appends o and makes it current on the file and the registry.
func (bf *File) addObject(o *Object) {
	bf.mu.Lock()
	bf.objs = append(bf.objs, o)
	bf.mu.Unlock()
	if bf.bin != nil {
		bf.bin.SetCur(bf, o)
	} else {
		bf.setCur(o)
	}
}

func (bf *File) removeObject(o *Object) {
	bf.mu.Lock()
	if i := slices.Index(bf.objs, o); i >= 0 {
		bf.objs = slices.Delete(bf.objs, i, i+1)
	}
	if bf.cur == o {
		bf.cur = nil
	}
	bf.mu.Unlock()
	bf.unmount(o.KV)
	o.free()
}

// unmount drops every namespace backed by s.
func (bf *File) unmount(s kv.Store) {
	if s == nil {
		return
	}
	bf.mu.Lock()
	defer bf.mu.Unlock()
	for name, ns := range bf.namespaces {
		if ns == s {
			delete(bf.namespaces, name)
		}
	}
}

// Close frees every object, unregisters the file and closes its buffer.
// Closing a closed file is a no-op.
func (bf *File) Close() error {
	bf.mu.Lock()
	if bf.closed {
		bf.mu.Unlock()
		return nil
	}
	bf.closed = true
	objs := bf.objs
	bf.objs = nil
	bf.cur = nil
	bf.mu.Unlock()
	for _, o := range objs {
		bf.unmount(o.KV)
		o.free()
	}
	if bf.bin != nil {
		bf.bin.removeFile(bf)
	}
	bf.kv.Close()
	if bf.Buf != nil {
		return bf.Buf.Close()
	}
	return nil
}
