package gradient

import "sort"

// Kind is how an infill pattern's moves are treated. Linear patterns
// produce long straight moves worth subdividing; small-segment patterns
// are already fine-grained and get per-move scaling instead.
type Kind int

const (
	KindUnsupported Kind = iota
	KindSmallSegments
	KindLinear
)

func (k Kind) String() string {
	switch k {
	case KindSmallSegments:
		return "small-segments"
	case KindLinear:
		return "linear"
	default:
		return "unsupported"
	}
}

// patternKinds maps Cura infill_pattern names to a kind. Patterns mapped
// to KindUnsupported are known names the gradient cannot handle;
// everything absent from the table is unsupported too.
var patternKinds = map[string]Kind{
	"grid":          KindLinear,
	"lines":         KindLinear,
	"triangles":     KindLinear,
	"trihexagon":    KindLinear,
	"cubic":         KindLinear,
	"cubicsubdiv":   KindUnsupported,
	"tetrahedral":   KindLinear,
	"quarter_cubic": KindLinear,
	"concentric":    KindUnsupported,
	"zigzag":        KindUnsupported,
	"cross":         KindSmallSegments,
	"cross_3d":      KindSmallSegments,
	"gyroid":        KindSmallSegments,
}

// KindForPattern returns the kind for a named infill pattern, or
// KindUnsupported when the name has no defined mapping.
func KindForPattern(name string) Kind {
	return patternKinds[name]
}

// PatternNames returns all known pattern names, sorted.
func PatternNames() []string {
	names := make([]string, 0, len(patternKinds))
	for name := range patternKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
