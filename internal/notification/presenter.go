// Package notification renders stopwatch state as a persistent notification.
package notification

import (
	"stopwatch/internal/core/command"
	"stopwatch/internal/core/stopwatch"
)

// PrimaryIndex is the fixed position of the Stop/Resume action.
const PrimaryIndex = 0

// Action is a notification button and the request it sends when tapped.
type Action struct {
	Label   string
	Request command.Request
}

// Descriptor is everything a host needs to show the notification.
type Descriptor struct {
	Channel Channel
	SlotID  int
	Title   string
	Body    string
	Actions []Action
	// OpensView is set when tapping the notification body opens the bound view.
	OpensView bool
	Ongoing   bool
}

// StopAction pauses the stopwatch.
func StopAction() Action {
	return Action{Label: "Stop", Request: command.ForCommand(command.Stop)}
}

// ResumeAction restarts a stopped stopwatch.
func ResumeAction() Action {
	return Action{Label: "Resume", Request: command.ForCommand(command.Start)}
}

// CancelAction resets the stopwatch.
func CancelAction() Action {
	return Action{Label: "Cancel", Request: command.ForCommand(command.Cancel)}
}

// Presenter keeps the notification under construction.
// It is not safe for concurrent use.
type Presenter struct {
	config  Config
	body    string
	actions []Action
}

// NewPresenter creates a presenter showing 00:00:00 with [Stop, Cancel].
func NewPresenter(config Config) *Presenter {
	return &Presenter{
		config:  config,
		body:    stopwatch.Format(0).String(),
		actions: []Action{StopAction(), CancelAction()},
	}
}

// SetPrimary replaces the action at PrimaryIndex, leaving the rest in place.
func (presenter *Presenter) SetPrimary(action Action) {
	actions := make([]Action, 0, len(presenter.actions)+1)
	actions = append(actions, presenter.actions[:PrimaryIndex]...)
	actions = append(actions, action)
	if len(presenter.actions) > PrimaryIndex {
		actions = append(actions, presenter.actions[PrimaryIndex+1:]...)
	}
	presenter.actions = actions
}

// ShowStop sets the primary action to Stop.
func (presenter *Presenter) ShowStop() {
	presenter.SetPrimary(StopAction())
}

// ShowResume sets the primary action to Resume.
func (presenter *Presenter) ShowResume() {
	presenter.SetPrimary(ResumeAction())
}

// SetTime updates the notification body.
func (presenter *Presenter) SetTime(formatted stopwatch.Formatted) {
	presenter.body = formatted.String()
}

// Descriptor returns a copy of the current notification.
func (presenter *Presenter) Descriptor() Descriptor {
	actions := make([]Action, len(presenter.actions))
	copy(actions, presenter.actions)
	return Descriptor{
		Channel:   presenter.config.Channel,
		SlotID:    presenter.config.SlotID,
		Title:     presenter.config.Title,
		Body:      presenter.body,
		Actions:   actions,
		OpensView: true,
		Ongoing:   true,
	}
}

// Primary returns the action at PrimaryIndex.
func (descriptor Descriptor) Primary() (Action, bool) {
	if len(descriptor.Actions) <= PrimaryIndex {
		return Action{}, false
	}
	return descriptor.Actions[PrimaryIndex], true
}
