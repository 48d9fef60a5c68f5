package builder

// Mode selects how submitted points are interpreted.
type Mode int8

// Input modes.
const (
	Hermite    Mode = iota // control points with explicit tangent handles
	CatmullRom             // control points only, tangents derived from neighbours
)

func (m Mode) String() string {
	switch m {
	case Hermite:
		return "hermite"
	case CatmullRom:
		return "catmull-rom"
	}
	return "<unknown mode>"
}

// InputPhase tells what the next submission in Hermite mode will be.
type InputPhase int8

// Input phases of the Hermite input cycle.
const (
	AwaitingControlPoint InputPhase = iota
	AwaitingTangent
)

func (ph InputPhase) String() string {
	switch ph {
	case AwaitingControlPoint:
		return "awaiting control point"
	case AwaitingTangent:
		return "awaiting tangent"
	}
	return "<unknown phase>"
}

// next cycles the phase.
func (ph InputPhase) next() InputPhase {
	if ph == AwaitingControlPoint {
		return AwaitingTangent
	}
	return AwaitingControlPoint
}
