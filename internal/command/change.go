package command

import (
	"fmt"

	"canvasedit/pkg/richdoc"
)

// Change is a batch of commands applied and undone as one unit.
type Change struct {
	Commands []Command
}

func NewChange(cmds ...Command) Change {
	return Change{Commands: cmds}
}

func (ch Change) Empty() bool {
	return len(ch.Commands) == 0
}

// Execute applies the commands in order. On failure the input is returned
// unchanged along with the error.
func (ch Change) Execute(runs richdoc.Runs) (richdoc.Runs, error) {
	out := runs
	for i, c := range ch.Commands {
		next, err := c.Execute(out)
		if err != nil {
			return runs, fmt.Errorf("command %d (%s): %w", i, c.Kind, err)
		}
		out = next
	}
	return out, nil
}

// Reverse returns the change that undoes ch: each command's inverse, last
// command first.
func (ch Change) Reverse() Change {
	rev := make([]Command, len(ch.Commands))
	for i, c := range ch.Commands {
		rev[len(ch.Commands)-1-i] = c.Inverse()
	}
	return Change{Commands: rev}
}
