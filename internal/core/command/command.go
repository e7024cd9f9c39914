// Package command decodes inbound stopwatch requests.
//
// A request can carry a command on two channels: a status-name payload
// (State) and an action identifier (Action). State is canonical. Action is a
// compatibility alias read only when State is empty or unrecognised, so a
// request never applies more than one command.
package command

import "stopwatch/internal/core/stopwatch"

// Command is a decoded stopwatch instruction.
type Command int

const (
	None Command = iota
	Start
	Stop
	Cancel
)

// StateKey names the status payload field.
const StateKey = "STOPWATCH_STATE"

// Action identifiers accepted on the action channel.
const (
	ActionStart  = "ACTION_SERVICE_START"
	ActionStop   = "ACTION_SERVICE_STOP"
	ActionCancel = "ACTION_SERVICE_CANCEL"
)

// Request is an inbound trigger from a view, a notification action or the CLI.
type Request struct {
	State  string `json:"state,omitempty"`
	Action string `json:"action,omitempty"`
}

// Decode returns the single command carried by request.
func Decode(request Request) Command {
	if cmd := fromState(request.State); cmd != None {
		return cmd
	}
	return fromAction(request.Action)
}

// ForCommand builds the canonical request for cmd.
func ForCommand(cmd Command) Request {
	switch cmd {
	case Start:
		return Request{State: stopwatch.StatusStarted.String()}
	case Stop:
		return Request{State: stopwatch.StatusStopped.String()}
	case Cancel:
		return Request{State: stopwatch.StatusCanceled.String()}
	default:
		return Request{}
	}
}

// ForAction builds the action-channel request for cmd.
func ForAction(cmd Command) Request {
	switch cmd {
	case Start:
		return Request{Action: ActionStart}
	case Stop:
		return Request{Action: ActionStop}
	case Cancel:
		return Request{Action: ActionCancel}
	default:
		return Request{}
	}
}

// Parse maps a user-facing command word (start, stop, cancel) to a Command.
func Parse(word string) (Command, bool) {
	switch word {
	case "start":
		return Start, true
	case "stop":
		return Stop, true
	case "cancel":
		return Cancel, true
	default:
		return None, false
	}
}

func (cmd Command) String() string {
	switch cmd {
	case Start:
		return "start"
	case Stop:
		return "stop"
	case Cancel:
		return "cancel"
	default:
		return "none"
	}
}

func fromState(state string) Command {
	status, ok := stopwatch.ParseStatus(state)
	if !ok {
		return None
	}
	switch status {
	case stopwatch.StatusStarted:
		return Start
	case stopwatch.StatusStopped:
		return Stop
	case stopwatch.StatusCanceled:
		return Cancel
	default:
		return None
	}
}

func fromAction(action string) Command {
	switch action {
	case ActionStart:
		return Start
	case ActionStop:
		return Stop
	case ActionCancel:
		return Cancel
	default:
		return None
	}
}
