// Package notice implements the legal notice shown before the splash.
package notice

import (
	"fmt"

	"go.uber.org/zap"
)

type State int

const (
	Shown         State = iota // waiting for a button
	ViewingNotice              // full notice opened in the browser
	Acknowledged               // terminal, continue to the splash
	ExitRequested              // terminal, quit the program
)

func (s State) String() string {
	switch s {
	case Shown:
		return "shown"
	case ViewingNotice:
		return "viewing_notice"
	case Acknowledged:
		return "acknowledged"
	case ExitRequested:
		return "exit_requested"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Event int

const (
	Acknowledge Event = iota
	ViewNotice
	Exit
	// Return brings the dialog back after the notice was viewed.
	Return
)

func (e Event) String() string {
	switch e {
	case Acknowledge:
		return "acknowledge"
	case ViewNotice:
		return "view_notice"
	case Exit:
		return "exit"
	case Return:
		return "return"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Button is one choice offered by the dialog.
type Button struct {
	Label string
	Event Event
}

// Buttons lists the dialog choices in display order.
func Buttons() []Button {
	return []Button{
		{Label: "I acknowledge", Event: Acknowledge},
		{Label: "View Full Notice", Event: ViewNotice},
		{Label: "Exit", Event: Exit},
	}
}

// Dialog is the notice state machine.
type Dialog struct {
	Title   string
	Message string
	URL     string

	state  State
	opener URLOpener
	logger *zap.Logger
}

func NewDialog(title, message, url string, opener URLOpener, logger *zap.Logger) *Dialog {
	return &Dialog{
		Title:   title,
		Message: message,
		URL:     url,
		state:   Shown,
		opener:  opener,
		logger:  logger.Named("notice"),
	}
}

func (d *Dialog) State() State { return d.state }

// Done reports whether the dialog reached a terminal state.
func (d *Dialog) Done() bool {
	return d.state == Acknowledged || d.state == ExitRequested
}

// Handle applies ev and returns the new state. Events that make no sense in
// the current state are ignored.
func (d *Dialog) Handle(ev Event) State {
	from := d.state
	switch d.state {
	case Shown:
		switch ev {
		case Acknowledge:
			d.state = Acknowledged
		case Exit:
			d.state = ExitRequested
		case ViewNotice:
			if err := d.opener.Open(d.URL); err != nil {
				d.logger.Warn("Failed to open notice URL", zap.String("url", d.URL), zap.Error(err))
				break
			}
			d.state = ViewingNotice
		}
	case ViewingNotice:
		switch ev {
		case Return:
			d.state = Shown
		case Exit:
			d.state = ExitRequested
		}
	}
	if d.state != from {
		d.logger.Debug("Notice transition",
			zap.Stringer("event", ev),
			zap.Stringer("from", from),
			zap.Stringer("to", d.state))
	}
	return d.state
}
