package conference

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings/types"
	"github.com/stretchr/testify/require"
)

type fakeChime struct {
	meetingIn  *chimesdkmeetings.CreateMeetingInput
	attendeeIn *chimesdkmeetings.CreateAttendeeInput
	capsIn     []*chimesdkmeetings.UpdateAttendeeCapabilitiesInput
}

func (f *fakeChime) CreateMeeting(ctx context.Context, params *chimesdkmeetings.CreateMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateMeetingOutput, error) {
	f.meetingIn = params
	return &chimesdkmeetings.CreateMeetingOutput{
		Meeting: &types.Meeting{MeetingId: aws.String("mtg-1")},
	}, nil
}

func (f *fakeChime) CreateAttendee(ctx context.Context, params *chimesdkmeetings.CreateAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateAttendeeOutput, error) {
	f.attendeeIn = params
	return &chimesdkmeetings.CreateAttendeeOutput{
		Attendee: &types.Attendee{
			AttendeeId: aws.String("att-1"),
			JoinToken:  aws.String("jt-1"),
		},
	}, nil
}

func (f *fakeChime) UpdateAttendeeCapabilities(ctx context.Context, params *chimesdkmeetings.UpdateAttendeeCapabilitiesInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.UpdateAttendeeCapabilitiesOutput, error) {
	f.capsIn = append(f.capsIn, params)
	return &chimesdkmeetings.UpdateAttendeeCapabilitiesOutput{}, nil
}

func TestChimeCreateMeetingUsesTokenAndRegion(t *testing.T) {
	fake := &fakeChime{}
	conf := NewChimeConference(fake, "us-east-1")

	meetingID, err := conf.CreateMeeting(context.TODO(), "54321")
	require.NoError(t, err)
	require.Equal(t, "mtg-1", meetingID)

	require.Equal(t, "54321", *fake.meetingIn.ClientRequestToken)
	require.Equal(t, "us-east-1", *fake.meetingIn.MediaRegion)
}

func TestChimeCreateAttendee(t *testing.T) {
	fake := &fakeChime{}
	conf := NewChimeConference(fake, "us-east-1")

	attendee, err := conf.CreateAttendee(context.TODO(), "mtg-1", "+15550100")
	require.NoError(t, err)
	require.Equal(t, "att-1", attendee.ID)
	require.Equal(t, "jt-1", attendee.JoinToken)

	require.Equal(t, "mtg-1", *fake.attendeeIn.MeetingId)
	require.Equal(t, "+15550100", *fake.attendeeIn.ExternalUserId)
}

func TestChimeSetMuteDropsAudioSend(t *testing.T) {
	fake := &fakeChime{}
	conf := NewChimeConference(fake, "us-east-1")

	require.NoError(t, conf.SetMute(context.TODO(), "mtg-1", []string{"att-1", "att-2"}, true))
	require.Len(t, fake.capsIn, 2)
	require.Equal(t, types.MediaCapabilitiesReceive, fake.capsIn[0].Capabilities.Audio)
	require.Equal(t, "att-1", *fake.capsIn[0].AttendeeId)
	require.Equal(t, "att-2", *fake.capsIn[1].AttendeeId)

	fake.capsIn = nil
	require.NoError(t, conf.SetMute(context.TODO(), "mtg-1", []string{"att-1"}, false))
	require.Len(t, fake.capsIn, 1)
	require.Equal(t, types.MediaCapabilitiesSendReceive, fake.capsIn[0].Capabilities.Audio)
}
