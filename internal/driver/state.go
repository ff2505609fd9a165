package driver

// State is the driver's position in its Idle/Injecting loop.
type State int

const (
	StateIdle State = iota
	StateInjecting
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInjecting:
		return "injecting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
