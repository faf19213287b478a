package sma

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSource(key string) AudioSource {
	return AudioSource{Type: "S3", BucketName: "bucket", Key: key}
}

func TestActionsCarryFreshParameters(t *testing.T) {
	// Two responses built from the same constructor must not share state
	a := ModifyChimeMeetingAttendees(OperationMute, "mtg-1", []string{"att-1"})
	b := ModifyChimeMeetingAttendees(OperationUnmute, "mtg-2", []string{"att-2"})

	pa := a.Parameters.(ModifyChimeMeetingAttendeesParameters)
	pb := b.Parameters.(ModifyChimeMeetingAttendeesParameters)
	require.Equal(t, OperationMute, pa.Operation)
	require.Equal(t, OperationUnmute, pb.Operation)
	require.Equal(t, "mtg-1", pa.MeetingID)
	require.Equal(t, []string{"att-1"}, pa.AttendeeIDs)
}

func TestPlayAudioTagsLegA(t *testing.T) {
	a := PlayAudio(testSource("muted.wav"))
	p := a.Parameters.(PlayAudioParameters)
	require.Equal(t, LegA, p.ParticipantTag)
	require.Equal(t, "muted.wav", p.AudioSource.Key)
}

func TestActionWireFormat(t *testing.T) {
	data, err := json.Marshal(JoinChimeMeeting("token-123"))
	require.NoError(t, err)
	require.JSONEq(t, `{"Type":"JoinChimeMeeting","Parameters":{"AttendeeJoinToken":"token-123"}}`, string(data))

	data, err = json.Marshal(Pause())
	require.NoError(t, err)
	require.JSONEq(t, `{"Type":"Pause","Parameters":{"DurationInMilliseconds":"1000"}}`, string(data))

	data, err = json.Marshal(Hangup())
	require.NoError(t, err)
	require.JSONEq(t, `{"Type":"Hangup","Parameters":{"SipResponseCode":"0"}}`, string(data))
}

func TestModifyAttendeesWireFormat(t *testing.T) {
	data, err := json.Marshal(ModifyChimeMeetingAttendees(OperationMute, "mtg-1", []string{"att-1", "att-2"}))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"Type": "ModifyChimeMeetingAttendees",
		"Parameters": {
			"Operation": "Mute",
			"MeetingId": "mtg-1",
			"AttendeeIds": ["att-1", "att-2"]
		}
	}`, string(data))
}

func TestResponseEnvelope(t *testing.T) {
	data, err := json.Marshal(NewResponse([]Action{Hangup()}))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"SchemaVersion": "1.0",
		"Actions": [{"Type":"Hangup","Parameters":{"SipResponseCode":"0"}}]
	}`, string(data))
}

func TestEmptyResponseMarshalsActionsAsArray(t *testing.T) {
	data, err := json.Marshal(NewResponse(nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"SchemaVersion":"1.0","Actions":[]}`, string(data))
}

func TestCallEventDecoding(t *testing.T) {
	raw := `{
		"InvocationEventType": "DIGITS_RECEIVED",
		"CallDetails": {
			"Participants": [
				{"From": "+15550100", "CallId": "call-1", "Status": "Connected"}
			]
		},
		"ActionData": {"Type": "ReceiveDigits", "ReceivedDigits": "*5"}
	}`

	var event CallEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &event))
	require.Equal(t, EventDigitsReceived, event.InvocationEventType)
	require.Equal(t, ActionReceiveDigits, event.ActionData.Type)
	require.Equal(t, "*5", event.ActionData.ReceivedDigits)

	caller, ok := event.Caller()
	require.True(t, ok)
	require.Equal(t, "+15550100", caller.From)
	require.Equal(t, "call-1", caller.CallID)
	require.Equal(t, StatusConnected, caller.Status)
}

func TestCallerMissing(t *testing.T) {
	_, ok := CallEvent{}.Caller()
	require.False(t, ok)
}
