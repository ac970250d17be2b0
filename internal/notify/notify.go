// Package notify tells the user that a breathing session has finished
package notify

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
)

const (
	title   = "Breathing session complete"
	message = "Great job! Take a moment before getting up."
)

// Notifier sends the completion notification and runs the completion
// command.
type Notifier struct {
	notify  func(title, message, icon string) error
	command func(ctx context.Context, name string, args ...string) *exec.Cmd
	// Cmd is executed after a completed session when not empty.
	Cmd string
	// Icon is an optional path to an image shown in the notification.
	Icon    string
	Enabled bool
}

// New returns a Notifier that uses the desktop notification service.
func New(enabled bool, cmd string) *Notifier {
	return &Notifier{
		Enabled: enabled,
		Cmd:     cmd,
		notify:  beeep.Notify,
		command: exec.CommandContext,
	}
}

// Title is the notification heading, also reused by the views.
func Title() string {
	return title
}

// Message is the notification body, also reused by the views.
func Message(rounds int) string {
	if rounds == 1 {
		return message
	}

	return fmt.Sprintf("%d rounds done. %s", rounds, message)
}

// SessionComplete displays a desktop notification if enabled.
func (n *Notifier) SessionComplete(rounds int) error {
	if !n.Enabled {
		return nil
	}

	err := n.notify(title, Message(rounds), n.Icon)
	if err != nil {
		return fmt.Errorf("unable to display notification: %w", err)
	}

	return nil
}

// RunCmd executes the completion command, if any, and waits for it.
func (n *Notifier) RunCmd(ctx context.Context) error {
	if n.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(n.Cmd)
	if err != nil {
		return fmt.Errorf("unable to parse complete_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return n.command(ctx, name, args...).Run()
}
