package bin

import "fmt"

// dedup returns name unchanged on its first sighting and name_N on the
// N+1th, along with N.
func dedup(seen map[string]int, name string) (string, int) {
	seen[name]++
	n := seen[name] - 1
	if n == 0 {
		return name, 0
	}
	return fmt.Sprintf("%s_%d", name, n), n
}

func filterSymbols(syms []*Symbol) {
	seen := make(map[string]int, len(syms))
	for _, s := range syms {
		if s.Name == "" {
			continue
		}
		s.Name, s.DupCount = dedup(seen, s.Name)
	}
}

func filterSections(secs []*Section) {
	seen := make(map[string]int, len(secs))
	for _, s := range secs {
		if s.Name == "" {
			continue
		}
		s.Name, _ = dedup(seen, s.Name)
	}
}

// filterClasses renames duplicate class names. Method symbols were already
// filtered with the symbol collection.
func filterClasses(classes []*Class) {
	seen := make(map[string]int, len(classes))
	for _, c := range classes {
		if c.Name == "" {
			continue
		}
		c.Name, _ = dedup(seen, c.Name)
	}
}
