// Package directory persists the caller↔meeting↔attendee mapping that all
// cross-call coordination flows through.
package directory

import "context"

// PhaseJoined is the persisted phase of a record whose call leg has been
// bridged into its meeting. Records only exist for joined legs, so this is
// currently the sole phase value written.
const PhaseJoined = "joined"

// Record maps one call leg to its meeting attendee. The (FromNumber,
// CallID) pair is the primary key; MeetingID carries a secondary index for
// roster queries.
type Record struct {
	FromNumber string `dynamodbav:"fromNumber"`
	CallID     string `dynamodbav:"callId"`
	MeetingID  string `dynamodbav:"meetingId,omitempty"`
	AttendeeID string `dynamodbav:"attendeeId,omitempty"`
	Phase      string `dynamodbav:"phase,omitempty"`
}

// Directory is the durable participant store. Writes are last-writer-wins;
// the two-step caller-then-roster read sequence carries no transactional
// guarantee and a roster change between the reads is accepted.
type Directory interface {
	// FindByCaller returns the record for a call leg, or nil when the leg
	// never joined a meeting.
	FindByCaller(ctx context.Context, fromNumber, callID string) (*Record, error)

	// FindAllByMeeting returns the roster of a meeting.
	FindAllByMeeting(ctx context.Context, meetingID string) ([]Record, error)

	// Upsert writes a record, overwriting any prior record for its key.
	Upsert(ctx context.Context, rec Record) error

	// Delete removes the record for a call leg. Deleting a missing record
	// is not an error.
	Delete(ctx context.Context, fromNumber, callID string) error
}
