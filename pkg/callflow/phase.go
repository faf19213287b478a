package callflow

import (
	"fmt"

	"github.com/cloudgroundcontrol/chime-dialin/pkg/sma"
)

// Phase is the call leg's position in the dial-in flow. It is derived from
// the type of the action the platform just completed rather than stored
// in-process, so every event can be handled statelessly.
type Phase int

const (
	// PhaseUnknown means the completed action does not belong to the flow.
	PhaseUnknown Phase = iota
	// PhaseCollectingPin is after the PIN prompt finished collecting digits.
	PhaseCollectingPin
	// PhaseJoining is after the leg was bridged into its meeting.
	PhaseJoining
	// PhaseListening is after command listening was armed.
	PhaseListening
)

func (p Phase) String() string {
	switch p {
	case PhaseUnknown:
		return "Unknown"
	case PhaseCollectingPin:
		return "CollectingPin"
	case PhaseJoining:
		return "Joining"
	case PhaseListening:
		return "Listening"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// PhaseAfter maps a completed action type to the phase the leg is in once
// that action finished.
func PhaseAfter(t sma.ActionType) Phase {
	switch t {
	case sma.ActionPlayAudioAndGetDigits:
		return PhaseCollectingPin
	case sma.ActionJoinChimeMeeting:
		return PhaseJoining
	case sma.ActionReceiveDigits:
		return PhaseListening
	default:
		return PhaseUnknown
	}
}
