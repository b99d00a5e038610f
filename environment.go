package tabnav

// SizeClass is a coarse descriptor of available width or height, used
// instead of literal cell counts for presentation decisions.
type SizeClass int

const (
	Compact SizeClass = iota
	Regular
)

func (s SizeClass) String() string {
	if s == Regular {
		return "regular"
	}
	return "compact"
}

// Width and height breakpoints separating Compact from Regular.
const (
	RegularWidthMin  = 100
	RegularHeightMin = 30
)

// Environment is a snapshot of the available screen space, supplied by
// the host on every layout-relevant change. It is transient: the
// controller never queries ambient terminal state itself, it only reacts
// to the descriptors handed to it.
type Environment struct {
	Horizontal SizeClass
	Vertical   SizeClass

	// TopInset is the number of rows reserved at the top for a
	// host-drawn system overlay (0 when none is shown).
	TopInset int
}

// EnvironmentFrom derives an Environment from raw terminal dimensions
// using the package breakpoints. TopInset is left at zero; hosts that
// reserve overlay rows set it on the returned value.
func EnvironmentFrom(width, height int) Environment {
	env := Environment{Horizontal: Compact, Vertical: Compact}
	if width >= RegularWidthMin {
		env.Horizontal = Regular
	}
	if height >= RegularHeightMin {
		env.Vertical = Regular
	}
	return env
}
