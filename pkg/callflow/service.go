// Package callflow decides, for each call-control event, the actions the
// platform should execute next. The core is stateless per event: everything
// durable lives in the directory, keyed by (fromNumber, callId).
package callflow

import (
	"context"
	"fmt"
	"regexp"

	"github.com/labstack/gommon/log"

	"github.com/cloudgroundcontrol/chime-dialin/pkg/audio"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/conference"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/directory"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/sma"
)

// pinPattern guards the collected digits before they reach meeting
// creation. The platform already enforces the digit count, so this only
// rejects replayed or forged events.
var pinPattern = regexp.MustCompile(`^\d{5}$`)

// Service is the event-to-action decision core. One event in, one ordered
// action list out.
type Service interface {
	HandleEvent(ctx context.Context, event sma.CallEvent) ([]sma.Action, error)
}

type service struct {
	prompts    audio.Library
	directory  directory.Directory
	conference conference.Conference
}

func NewService(prompts audio.Library, dir directory.Directory, conf conference.Conference) Service {
	return &service{
		prompts:    prompts,
		directory:  dir,
		conference: conf,
	}
}

func (s *service) HandleEvent(ctx context.Context, event sma.CallEvent) ([]sma.Action, error) {
	switch event.InvocationEventType {
	case sma.EventNewInboundCall:
		return s.handleInboundCall(event)
	case sma.EventDigitsReceived:
		return s.handleDigits(ctx, event)
	case sma.EventActionSuccessful:
		return s.handleActionCompleted(ctx, event)
	case sma.EventHangup:
		return s.handleHangup(ctx, event)
	default:
		// Fail safe: end the call rather than leave it undefined.
		log.Warnf("unrecognized event type %q, hanging up", event.InvocationEventType)
		return []sma.Action{sma.Hangup()}, nil
	}
}

// collectPin prompts for the meeting PIN and gathers it.
func (s *service) collectPin() sma.Action {
	pin := s.prompts.Source(audio.PromptMeetingPin)
	return sma.PlayAudioAndGetDigits(pin, pin)
}

func (s *service) handleInboundCall(event sma.CallEvent) ([]sma.Action, error) {
	caller, ok := event.Caller()
	if !ok {
		return []sma.Action{sma.Hangup()}, nil
	}
	log.Debugf("inbound call from %s (%s)", caller.From, caller.CallID)

	return []sma.Action{
		sma.Pause(),
		sma.PlayAudio(s.prompts.Source(audio.PromptWelcome)),
		s.collectPin(),
	}, nil
}

func (s *service) handleDigits(ctx context.Context, event sma.CallEvent) ([]sma.Action, error) {
	caller, ok := event.Caller()
	if !ok {
		return []sma.Action{sma.Hangup()}, nil
	}

	cmd := ParseCommand(event.ActionData.ReceivedDigits)
	log.Debugf("digits %q from %s parsed as %s", event.ActionData.ReceivedDigits, caller.CallID, cmd)

	switch cmd {
	case CommandMuteAll, CommandUnmuteAll:
		return s.modifyOthers(ctx, caller, cmd)
	case CommandMuteSelf, CommandUnmuteSelf:
		return s.modifySelf(ctx, caller, cmd)
	default:
		return nil, nil
	}
}

// modifyOthers mutes or unmutes every attendee of the caller's meeting
// except the caller. The roster is read once and the mutation is best
// effort against it; a roster change between the reads is accepted.
func (s *service) modifyOthers(ctx context.Context, caller sma.Participant, cmd Command) ([]sma.Action, error) {
	rec, err := s.directory.FindByCaller(ctx, caller.From, caller.CallID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.MeetingID == "" {
		log.Debugf("no meeting on record for %s, ignoring %s", caller.CallID, cmd)
		return nil, nil
	}

	roster, err := s.directory.FindAllByMeeting(ctx, rec.MeetingID)
	if err != nil {
		return nil, err
	}

	var others []string
	for _, r := range roster {
		if r.CallID == caller.CallID {
			continue
		}
		others = append(others, r.AttendeeID)
	}
	if len(others) == 0 {
		// Nothing to mute.
		return nil, nil
	}

	return []sma.Action{
		sma.ModifyChimeMeetingAttendees(cmd.operation(), rec.MeetingID, others),
		sma.PlayAudio(s.prompts.Source(cmd.confirmation())),
	}, nil
}

func (s *service) modifySelf(ctx context.Context, caller sma.Participant, cmd Command) ([]sma.Action, error) {
	rec, err := s.directory.FindByCaller(ctx, caller.From, caller.CallID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.MeetingID == "" {
		log.Debugf("no meeting on record for %s, ignoring %s", caller.CallID, cmd)
		return nil, nil
	}

	return []sma.Action{
		sma.ModifyChimeMeetingAttendees(cmd.operation(), rec.MeetingID, []string{rec.AttendeeID}),
		sma.PlayAudio(s.prompts.Source(cmd.confirmation())),
	}, nil
}

func (s *service) handleActionCompleted(ctx context.Context, event sma.CallEvent) ([]sma.Action, error) {
	phase := PhaseAfter(event.ActionData.Type)
	log.Debugf("action %s completed, phase %s", event.ActionData.Type, phase)

	switch phase {
	case PhaseCollectingPin:
		return s.joinMeeting(ctx, event)
	case PhaseJoining:
		// Bridged. Re-arm command listening and confirm audibly.
		return []sma.Action{
			sma.ReceiveDigits(),
			sma.PlayAudio(s.prompts.Source(audio.PromptMeetingJoined)),
		}, nil
	case PhaseListening:
		// Armed and idle, wait for the next digit event.
		return nil, nil
	default:
		log.Warnf("completed action %q does not belong to the flow, restarting PIN collection", event.ActionData.Type)
		return []sma.Action{s.collectPin()}, nil
	}
}

// joinMeeting turns a collected PIN into a meeting membership: create or
// fetch the meeting keyed by the PIN, issue attendee credentials, persist
// the mapping and bridge the leg.
func (s *service) joinMeeting(ctx context.Context, event sma.CallEvent) ([]sma.Action, error) {
	caller, ok := event.Caller()
	if !ok {
		return []sma.Action{sma.Hangup()}, nil
	}

	pin := event.ActionData.ReceivedDigits
	if !pinPattern.MatchString(pin) {
		log.Warnf("malformed meeting PIN from %s, re-prompting", caller.From)
		return []sma.Action{s.collectPin()}, nil
	}

	meetingID, err := s.conference.CreateMeeting(ctx, pin)
	if err != nil {
		return nil, fmt.Errorf("create meeting for %s: %w", caller.CallID, err)
	}

	attendee, err := s.conference.CreateAttendee(ctx, meetingID, caller.From)
	if err != nil {
		return nil, fmt.Errorf("create attendee for %s: %w", caller.CallID, err)
	}

	err = s.directory.Upsert(ctx, directory.Record{
		FromNumber: caller.From,
		CallID:     caller.CallID,
		MeetingID:  meetingID,
		AttendeeID: attendee.ID,
		Phase:      directory.PhaseJoined,
	})
	if err != nil {
		// Without the record every later command would be a silent no-op
		// for this leg, so this failure is not swallowed.
		return nil, fmt.Errorf("persist attendee record for %s: %w", caller.CallID, err)
	}

	log.Debugf("caller %s joined meeting %s as attendee %s", caller.From, meetingID, attendee.ID)
	return []sma.Action{sma.JoinChimeMeeting(attendee.JoinToken)}, nil
}

func (s *service) handleHangup(ctx context.Context, event sma.CallEvent) ([]sma.Action, error) {
	caller, ok := event.Caller()
	if !ok {
		return nil, nil
	}
	if caller.Status != sma.StatusDisconnected {
		return nil, nil
	}

	// Best-effort cleanup; the call is ending either way.
	if err := s.directory.Delete(ctx, caller.From, caller.CallID); err != nil {
		log.Errorf("delete attendee record for %s: %v", caller.CallID, err)
	}
	return nil, nil
}
