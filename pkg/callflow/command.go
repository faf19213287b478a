package callflow

import (
	"github.com/cloudgroundcontrol/chime-dialin/pkg/audio"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/sma"
)

// Command is one in-meeting touch-tone command.
type Command int

const (
	CommandNone Command = iota
	CommandMuteAll
	CommandUnmuteAll
	CommandMuteSelf
	CommandUnmuteSelf
)

func (c Command) String() string {
	switch c {
	case CommandMuteAll:
		return "MuteAll"
	case CommandUnmuteAll:
		return "UnmuteAll"
	case CommandMuteSelf:
		return "MuteSelf"
	case CommandUnmuteSelf:
		return "UnmuteSelf"
	default:
		return "None"
	}
}

// ParseCommand matches a digit string against the command grammar. Anything
// outside the grammar is CommandNone; invalid input gets no feedback.
func ParseCommand(digits string) Command {
	switch digits {
	case "*5":
		return CommandMuteAll
	case "*6":
		return CommandUnmuteAll
	case "*7":
		return CommandMuteSelf
	case "*8":
		return CommandUnmuteSelf
	default:
		return CommandNone
	}
}

func (c Command) operation() sma.AttendeeOperation {
	if c == CommandMuteAll || c == CommandMuteSelf {
		return sma.OperationMute
	}
	return sma.OperationUnmute
}

func (c Command) confirmation() audio.Prompt {
	if c.operation() == sma.OperationMute {
		return audio.PromptMuted
	}
	return audio.PromptUnmuted
}
