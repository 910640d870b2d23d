package roving

// EventKind identifies a discrete activation event delivered by the host.
type EventKind int

const (
	// MovePrev selects the item before the current one, wrapping to the last.
	MovePrev EventKind = iota
	// MoveNext selects the item after the current one, wrapping to the first.
	MoveNext
	// MoveFirst selects the first item in the group.
	MoveFirst
	// MoveLast selects the last item in the group.
	MoveLast
	// Activate selects Target directly, bypassing directional computation.
	// Used for pointer activation.
	Activate
)

func (k EventKind) String() string {
	switch k {
	case MovePrev:
		return "MovePrev"
	case MoveNext:
		return "MoveNext"
	case MoveFirst:
		return "MoveFirst"
	case MoveLast:
		return "MoveLast"
	case Activate:
		return "Activate"
	default:
		return "Unknown"
	}
}

// Event is one discrete input delivered to a Controller. Target is only
// meaningful for Activate and must be an item obtained from the host's own
// enumeration.
type Event struct {
	Kind   EventKind
	Target Item
}
