package common

// CPUArch is the architecture family of a loaded object, shared by the
// format plugins so the same machine reads the same across ELF, Mach-O and
// PE.
type CPUArch int

const (
	AMD64 CPUArch = iota
	X86
	ARM64
	ARM
	PPC64
	PPC
	MIPS
	RISCV
	MultiArch
	Unknown
)

// ArchToString returns the short architecture name reported in object info.
// 32 and 64-bit variants of a family share a name; Bits tells them apart.
func ArchToString(arch CPUArch) string {
	switch arch {
	case AMD64, X86:
		return "x86"
	case ARM64, ARM:
		return "arm"
	case PPC64, PPC:
		return "ppc"
	case MIPS:
		return "mips"
	case RISCV:
		return "riscv"
	case MultiArch:
		return "multi"
	}
	return "unknown"
}

// Bits returns the native word size of arch, or 0 when it is not fixed.
func (a CPUArch) Bits() int {
	switch a {
	case AMD64, ARM64, PPC64:
		return 64
	case X86, ARM, PPC:
		return 32
	}
	return 0
}

func (a CPUArch) String() string {
	return ArchToString(a)
}
