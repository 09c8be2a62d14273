package components

// StatusKind is the exclusive control status of a fighter.
type StatusKind int

const (
	StatusNormal StatusKind = iota
	StatusDashing
	StatusStunned
	StatusKnockedDown
)

func (k StatusKind) String() string {
	switch k {
	case StatusDashing:
		return "dashing"
	case StatusStunned:
		return "stunned"
	case StatusKnockedDown:
		return "knocked-down"
	default:
		return "normal"
	}
}

// StatusData holds the one status a fighter is in and how many frames of it
// remain. Stun, knockdown and dash can never overlap.
type StatusData struct {
	Kind         StatusKind
	Timer        int
	DashVelocity float64
}

func (s StatusData) timerFor(k StatusKind) int {
	if s.Kind != k {
		return 0
	}
	return s.Timer
}
