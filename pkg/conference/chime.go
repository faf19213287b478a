package conference

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings/types"
)

// ChimeAPI is the slice of the Chime meetings client the gateway uses.
type ChimeAPI interface {
	CreateMeeting(ctx context.Context, params *chimesdkmeetings.CreateMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateMeetingOutput, error)
	CreateAttendee(ctx context.Context, params *chimesdkmeetings.CreateAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateAttendeeOutput, error)
	UpdateAttendeeCapabilities(ctx context.Context, params *chimesdkmeetings.UpdateAttendeeCapabilitiesInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.UpdateAttendeeCapabilitiesOutput, error)
}

type chimeConference struct {
	client      ChimeAPI
	mediaRegion string
}

// NewChimeConference returns a Conference backed by the Chime meetings
// service. All meetings are placed in the configured media region.
func NewChimeConference(client ChimeAPI, mediaRegion string) Conference {
	return &chimeConference{client: client, mediaRegion: mediaRegion}
}

func (c *chimeConference) CreateMeeting(ctx context.Context, token string) (string, error) {
	out, err := c.client.CreateMeeting(ctx, &chimesdkmeetings.CreateMeetingInput{
		ClientRequestToken: aws.String(token),
		ExternalMeetingId:  aws.String(token),
		MediaRegion:        aws.String(c.mediaRegion),
	})
	if err != nil {
		return "", fmt.Errorf("create meeting: %w", err)
	}
	if out.Meeting == nil || out.Meeting.MeetingId == nil {
		return "", fmt.Errorf("create meeting: empty meeting in response")
	}
	return *out.Meeting.MeetingId, nil
}

func (c *chimeConference) CreateAttendee(ctx context.Context, meetingID, externalUserID string) (Attendee, error) {
	out, err := c.client.CreateAttendee(ctx, &chimesdkmeetings.CreateAttendeeInput{
		MeetingId:      aws.String(meetingID),
		ExternalUserId: aws.String(externalUserID),
	})
	if err != nil {
		return Attendee{}, fmt.Errorf("create attendee: %w", err)
	}
	if out.Attendee == nil || out.Attendee.AttendeeId == nil || out.Attendee.JoinToken == nil {
		return Attendee{}, fmt.Errorf("create attendee: empty attendee in response")
	}
	return Attendee{
		ID:        *out.Attendee.AttendeeId,
		JoinToken: *out.Attendee.JoinToken,
	}, nil
}

func (c *chimeConference) SetMute(ctx context.Context, meetingID string, attendeeIDs []string, muted bool) error {
	// Dial-in legs are audio only, so mute maps to dropping the send half
	// of the audio capability.
	audio := types.MediaCapabilitiesSendReceive
	if muted {
		audio = types.MediaCapabilitiesReceive
	}

	for _, id := range attendeeIDs {
		_, err := c.client.UpdateAttendeeCapabilities(ctx, &chimesdkmeetings.UpdateAttendeeCapabilitiesInput{
			MeetingId:  aws.String(meetingID),
			AttendeeId: aws.String(id),
			Capabilities: &types.AttendeeCapabilities{
				Audio:   audio,
				Video:   types.MediaCapabilitiesNone,
				Content: types.MediaCapabilitiesNone,
			},
		})
		if err != nil {
			return fmt.Errorf("update attendee %s capabilities: %w", id, err)
		}
	}
	return nil
}
