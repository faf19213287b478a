package sma

// ActionType names an entry in the platform's action catalog.
type ActionType string

const (
	ActionPause                       ActionType = "Pause"
	ActionPlayAudio                   ActionType = "PlayAudio"
	ActionPlayAudioAndGetDigits       ActionType = "PlayAudioAndGetDigits"
	ActionReceiveDigits               ActionType = "ReceiveDigits"
	ActionJoinChimeMeeting            ActionType = "JoinChimeMeeting"
	ActionModifyChimeMeetingAttendees ActionType = "ModifyChimeMeetingAttendees"
	ActionHangup                      ActionType = "Hangup"
)

// AttendeeOperation selects the mutation applied by
// ModifyChimeMeetingAttendees.
type AttendeeOperation string

const (
	OperationMute   AttendeeOperation = "Mute"
	OperationUnmute AttendeeOperation = "Unmute"
)

// LegA tags the inbound leg of the call.
const LegA = "LEG-A"

// Static call-flow policy. The PIN is a fixed-length meeting token with a
// terminator escape and bounded retries; commands are a single star-prefixed
// digit.
const (
	pauseMillis       = "1000"
	sipResponseOK     = "0"
	pinDigits         = 5
	pinRepeat         = 3
	interDigitMillis  = 1000
	repeatDelayMillis = 5000
	flushMillis       = 10000

	// CommandDigitsRegex matches the in-meeting command grammar.
	CommandDigitsRegex = `^\*\d{1}$`
)

// Action is one call-control instruction. Parameters holds the per-type
// parameter struct; build actions through the constructors below so every
// response carries fresh values.
type Action struct {
	Type       ActionType `json:"Type"`
	Parameters any        `json:"Parameters"`
}

// AudioSource points the platform at a prompt object.
type AudioSource struct {
	Type       string `json:"Type"`
	BucketName string `json:"BucketName"`
	Key        string `json:"Key"`
}

type PauseParameters struct {
	DurationInMilliseconds string `json:"DurationInMilliseconds"`
}

type HangupParameters struct {
	SipResponseCode string `json:"SipResponseCode"`
}

type PlayAudioParameters struct {
	ParticipantTag string      `json:"ParticipantTag"`
	AudioSource    AudioSource `json:"AudioSource"`
}

type PlayAudioAndGetDigitsParameters struct {
	MinNumberOfDigits                     int         `json:"MinNumberOfDigits"`
	MaxNumberOfDigits                     int         `json:"MaxNumberOfDigits"`
	Repeat                                int         `json:"Repeat"`
	InBetweenDigitsDurationInMilliseconds int         `json:"InBetweenDigitsDurationInMilliseconds"`
	RepeatDurationInMilliseconds          int         `json:"RepeatDurationInMilliseconds"`
	TerminatorDigits                      []string    `json:"TerminatorDigits"`
	AudioSource                           AudioSource `json:"AudioSource"`
	FailureAudioSource                    AudioSource `json:"FailureAudioSource"`
}

type ReceiveDigitsParameters struct {
	InputDigitsRegex                      string `json:"InputDigitsRegex"`
	InBetweenDigitsDurationInMilliseconds int    `json:"InBetweenDigitsDurationInMilliseconds"`
	FlushDigitsDurationInMilliseconds     int    `json:"FlushDigitsDurationInMilliseconds"`
}

type JoinChimeMeetingParameters struct {
	AttendeeJoinToken string `json:"AttendeeJoinToken"`
}

type ModifyChimeMeetingAttendeesParameters struct {
	Operation   AttendeeOperation `json:"Operation"`
	MeetingID   string            `json:"MeetingId"`
	AttendeeIDs []string          `json:"AttendeeIds"`
}

// Pause lets the leg stabilise before the first prompt.
func Pause() Action {
	return Action{
		Type: ActionPause,
		Parameters: PauseParameters{
			DurationInMilliseconds: pauseMillis,
		},
	}
}

func Hangup() Action {
	return Action{
		Type: ActionHangup,
		Parameters: HangupParameters{
			SipResponseCode: sipResponseOK,
		},
	}
}

func PlayAudio(src AudioSource) Action {
	return Action{
		Type: ActionPlayAudio,
		Parameters: PlayAudioParameters{
			ParticipantTag: LegA,
			AudioSource:    src,
		},
	}
}

// PlayAudioAndGetDigits prompts for the meeting PIN and collects it.
func PlayAudioAndGetDigits(src, failureSrc AudioSource) Action {
	return Action{
		Type: ActionPlayAudioAndGetDigits,
		Parameters: PlayAudioAndGetDigitsParameters{
			MinNumberOfDigits:                     pinDigits,
			MaxNumberOfDigits:                     pinDigits,
			Repeat:                                pinRepeat,
			InBetweenDigitsDurationInMilliseconds: interDigitMillis,
			RepeatDurationInMilliseconds:          repeatDelayMillis,
			TerminatorDigits:                      []string{"#"},
			AudioSource:                           src,
			FailureAudioSource:                    failureSrc,
		},
	}
}

// ReceiveDigits arms in-meeting command listening.
func ReceiveDigits() Action {
	return Action{
		Type: ActionReceiveDigits,
		Parameters: ReceiveDigitsParameters{
			InputDigitsRegex:                      CommandDigitsRegex,
			InBetweenDigitsDurationInMilliseconds: interDigitMillis,
			FlushDigitsDurationInMilliseconds:     flushMillis,
		},
	}
}

func JoinChimeMeeting(joinToken string) Action {
	return Action{
		Type: ActionJoinChimeMeeting,
		Parameters: JoinChimeMeetingParameters{
			AttendeeJoinToken: joinToken,
		},
	}
}

func ModifyChimeMeetingAttendees(op AttendeeOperation, meetingID string, attendeeIDs []string) Action {
	return Action{
		Type: ActionModifyChimeMeetingAttendees,
		Parameters: ModifyChimeMeetingAttendeesParameters{
			Operation:   op,
			MeetingID:   meetingID,
			AttendeeIDs: attendeeIDs,
		},
	}
}
