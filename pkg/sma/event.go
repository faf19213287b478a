// Package sma holds the wire types exchanged with the Chime SIP media
// application platform: the invocation event it delivers and the action
// vocabulary it accepts back.
package sma

// EventType classifies a platform invocation.
type EventType string

const (
	EventNewInboundCall   EventType = "NEW_INBOUND_CALL"
	EventDigitsReceived   EventType = "DIGITS_RECEIVED"
	EventActionSuccessful EventType = "ACTION_SUCCESSFUL"
	EventHangup           EventType = "HANGUP"
)

// ParticipantStatus is the platform's view of a call leg.
type ParticipantStatus string

const (
	StatusConnected    ParticipantStatus = "Connected"
	StatusDisconnected ParticipantStatus = "Disconnected"
)

type Participant struct {
	From   string            `json:"From"`
	CallID string            `json:"CallId"`
	Status ParticipantStatus `json:"Status"`
}

type CallDetails struct {
	Participants []Participant `json:"Participants"`
}

// ActionData describes the action whose completion triggered the event,
// plus any digits it collected.
type ActionData struct {
	Type           ActionType `json:"Type"`
	ReceivedDigits string     `json:"ReceivedDigits"`
}

type CallEvent struct {
	InvocationEventType EventType   `json:"InvocationEventType"`
	CallDetails         CallDetails `json:"CallDetails"`
	ActionData          ActionData  `json:"ActionData"`
}

// Caller returns the participant that originated this call leg. The
// platform lists it first; an event without participants is malformed.
func (e CallEvent) Caller() (Participant, bool) {
	if len(e.CallDetails.Participants) == 0 {
		return Participant{}, false
	}
	return e.CallDetails.Participants[0], true
}
