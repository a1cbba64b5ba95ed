package gradient

// Section is the classifier state: which part of the layer the parser is
// currently inside. Exactly one is active at a time.
type Section int

const (
	SectionNone Section = iota
	SectionInnerWall
	SectionOuterWall
	SectionInfill
)

func (s Section) String() string {
	switch s {
	case SectionInnerWall:
		return "inner-wall"
	case SectionOuterWall:
		return "outer-wall"
	case SectionInfill:
		return "infill"
	default:
		return "none"
	}
}

// Boundary selects which wall type feeds the perimeter set.
type Boundary int

const (
	BoundaryInner Boundary = iota
	BoundaryOuter
)

// Section returns the wall section a boundary choice collects from.
func (b Boundary) Section() Section {
	if b == BoundaryOuter {
		return SectionOuterWall
	}
	return SectionInnerWall
}

func (b Boundary) String() string {
	if b == BoundaryOuter {
		return "outer"
	}
	return "inner"
}
