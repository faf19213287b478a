package conference

import (
	"context"
	"errors"
	"sync"

	"github.com/lithammer/shortuuid/v4"
)

var ErrMeetingNotFound = errors.New("meeting not found")

type memoryMeeting struct {
	id        string
	attendees map[string]Attendee
	muted     map[string]bool
}

// MemoryConference is an in-process Conference for tests and local runs.
// Meetings are keyed by their creation token so repeated tokens converge,
// matching the platform's idempotency contract.
type MemoryConference struct {
	lock     sync.Mutex
	byToken  map[string]*memoryMeeting
	meetings map[string]*memoryMeeting
}

func NewMemoryConference() *MemoryConference {
	return &MemoryConference{
		byToken:  make(map[string]*memoryMeeting),
		meetings: make(map[string]*memoryMeeting),
	}
}

func (m *MemoryConference) CreateMeeting(ctx context.Context, token string) (string, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if meeting, ok := m.byToken[token]; ok {
		return meeting.id, nil
	}

	meeting := &memoryMeeting{
		id:        "mtg-" + shortuuid.New(),
		attendees: make(map[string]Attendee),
		muted:     make(map[string]bool),
	}
	m.byToken[token] = meeting
	m.meetings[meeting.id] = meeting
	return meeting.id, nil
}

func (m *MemoryConference) CreateAttendee(ctx context.Context, meetingID, externalUserID string) (Attendee, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	meeting, ok := m.meetings[meetingID]
	if !ok {
		return Attendee{}, ErrMeetingNotFound
	}

	attendee := Attendee{
		ID:        "att-" + shortuuid.New(),
		JoinToken: "jt-" + shortuuid.New(),
	}
	meeting.attendees[attendee.ID] = attendee
	return attendee, nil
}

func (m *MemoryConference) SetMute(ctx context.Context, meetingID string, attendeeIDs []string, muted bool) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	meeting, ok := m.meetings[meetingID]
	if !ok {
		return ErrMeetingNotFound
	}
	for _, id := range attendeeIDs {
		meeting.muted[id] = muted
	}
	return nil
}

// Muted reports the mute state of an attendee.
func (m *MemoryConference) Muted(meetingID, attendeeID string) bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	meeting, ok := m.meetings[meetingID]
	if !ok {
		return false
	}
	return meeting.muted[attendeeID]
}
