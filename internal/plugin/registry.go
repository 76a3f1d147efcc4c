// Package plugin picks the format plugin for a buffer.
package plugin

import (
	"github.com/apex/log"
	"github.com/pkg/errors"

	"binobj/internal/bin"
	"binobj/internal/buffer"
	"binobj/internal/plugin/elf"
	"binobj/internal/plugin/macho"
	"binobj/internal/plugin/pe"
)

// Factory identifies a format by its leading bytes and builds its plugin.
type Factory struct {
	Name  string
	Check func(b []byte) bool
	Build func() bin.Plugin
}

// the PE check also accepts sRDI shellcode, so it runs last
var factories = [...]Factory{
	{Name: "elf", Check: elf.Check, Build: func() bin.Plugin { return elf.New() }},
	{Name: "mach0", Check: macho.Check, Build: func() bin.Plugin { return macho.New() }},
	{Name: "pe", Check: pe.Check, Build: func() bin.Plugin { return pe.New() }},
}

// Names lists the registered plugins in lookup order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for _, f := range factories {
		names = append(names, f.Name)
	}
	return names
}

// Find returns a fresh plugin for the first format that accepts buf.
func Find(buf buffer.Buffer) (bin.Plugin, error) {
	if buf == nil {
		return nil, errors.Wrap(bin.ErrUnsupportedPlugin, "no data")
	}
	b := buf.Bytes()
	for _, f := range factories {
		if f.Check(b) {
			log.WithField("plugin", f.Name).Debug("format identified")
			return f.Build(), nil
		}
	}
	return nil, errors.Wrap(bin.ErrUnsupportedPlugin, "no compatible plugin found")
}

// Open maps path, finds its plugin and loads it into b. The mapping is
// released when the returned file is closed.
func Open(b *bin.Bin, path string, baseAddr, loadAddr uint64) (*bin.File, error) {
	buf, err := buffer.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	p, err := Find(buf)
	if err != nil {
		buf.Close()
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}
	bf, err := b.Open(path, buf, p, baseAddr, loadAddr)
	if err != nil {
		buf.Close()
		return nil, err
	}
	return bf, nil
}
