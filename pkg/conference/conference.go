// Package conference abstracts the meeting platform: meeting creation,
// attendee credential issuance and server-side mute control.
package conference

import "context"

// Attendee is one caller's identity within a meeting. JoinToken is the
// one-time credential used to bridge the leg's media.
type Attendee struct {
	ID        string
	JoinToken string
}

// Conference is the meeting platform gateway.
type Conference interface {
	// CreateMeeting creates or fetches the meeting identified by the
	// caller-supplied token. Repeated calls with the same token converge
	// to one meeting; idempotency is delegated to the platform.
	CreateMeeting(ctx context.Context, token string) (string, error)

	// CreateAttendee issues credentials for an external identity on a
	// meeting.
	CreateAttendee(ctx context.Context, meetingID, externalUserID string) (Attendee, error)

	// SetMute mutes or unmutes the given attendees.
	SetMute(ctx context.Context, meetingID string, attendeeIDs []string, muted bool) error
}
