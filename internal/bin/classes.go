package bin

import "strings"

// swiftField returns the field name encoded in a Swift accessor display name
// like "Mod.Klass.count.getter_...".
func swiftField(dn, cn string) (string, bool) {
	if dn == "" || cn == "" {
		return "", false
	}
	if !strings.Contains(dn, ".getter_") && !strings.Contains(dn, ".setter_") && !strings.Contains(dn, ".method_") {
		return "", false
	}
	rest, ok := afterClass(dn, cn)
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		rest = rest[:i]
	}
	return rest, true
}

// afterClass returns what follows the first "<cn>." in dn.
func afterClass(dn, cn string) (string, bool) {
	i := strings.Index(dn, cn)
	if i < 0 || i+len(cn) >= len(dn) || dn[i+len(cn)] != '.' {
		return "", false
	}
	return dn[i+len(cn)+1:], true
}

// DeriveClasses rebuilds classes from o's symbols, starting from o's current
// classes. Symbols whose name starts with '_' and that carry a class name
// contribute a field (Swift accessors) or a method (a display name of the
// form "<class>.<method>"); display names with ".." are skipped. It returns
// nil if no symbol qualified.
func DeriveClasses(o *Object) []*Class {
	classes := append([]*Class(nil), o.Classes...)
	byName := make(map[string]*Class, len(classes))
	for _, c := range classes {
		if _, dup := byName[c.Name]; !dup {
			byName[c.Name] = c
		}
	}
	class := func(name string) *Class {
		if c, ok := byName[name]; ok {
			return c
		}
		c := &Class{Name: name, Index: len(classes)}
		classes = append(classes, c)
		byName[name] = c
		return c
	}

	found := false
	for _, sym := range o.Symbols {
		if !strings.HasPrefix(sym.Name, "_") || sym.Classname == "" {
			continue
		}
		found = true
		cn := sym.Classname
		c := class(cn)
		dn := sym.DName
		if dn == "" {
			dn = sym.Name
		}
		if fn, ok := swiftField(dn, cn); ok {
			c.Fields = append(c.Fields, &Field{
				PAddr: sym.PAddr,
				VAddr: sym.VAddr,
				Size:  sym.Size,
				Name:  fn,
			})
			continue
		}
		if strings.Contains(dn, "..") {
			continue
		}
		if _, ok := afterClass(dn, cn); ok {
			c.Methods = append(c.Methods, sym)
		}
	}
	if !found {
		return nil
	}
	return classes
}
