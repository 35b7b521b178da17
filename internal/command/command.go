package command

import (
	"errors"
	"fmt"

	"canvasedit/pkg/richdoc"
)

var ErrAddressing = errors.New("command: run address out of range")

type Kind uint8

const (
	KindInsert Kind = iota
	KindRemove
	KindSetFormat
	// KindRestoreFormat merges the pieces a SetFormat produced back into a
	// single run of the captured previous style. It only appears as an inverse.
	KindRestoreFormat
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindRemove:
		return "remove"
	case KindSetFormat:
		return "set-format"
	case KindRestoreFormat:
		return "restore-format"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Command is one invertible edit addressed by run index and rune offsets.
// Build commands with NewInsert, NewRemove and NewSetFormat so they carry
// what their inverse needs.
type Command struct {
	Kind Kind
	Run  int
	At   int
	To   int
	Text string

	// Style is the inserted run style for whole-run inserts and the target
	// style for format commands. Prev is the style being replaced.
	Style richdoc.Style
	Prev  richdoc.Style

	// Whole marks inserts and removes of an entire run.
	Whole bool
	// Pieces is the number of runs a SetFormat split its run into.
	Pieces int
}

type executor func(c Command, runs richdoc.Runs) (richdoc.Runs, error)

var executors = map[Kind]executor{
	KindInsert:        execInsert,
	KindRemove:        execRemove,
	KindSetFormat:     execSetFormat,
	KindRestoreFormat: execRestoreFormat,
}

var inverters = map[Kind]func(Command) Command{
	KindInsert: func(c Command) Command {
		c.Kind = KindRemove
		return c
	},
	KindRemove: func(c Command) Command {
		c.Kind = KindInsert
		return c
	},
	KindSetFormat: func(c Command) Command {
		c.Kind = KindRestoreFormat
		return c
	},
	KindRestoreFormat: func(c Command) Command {
		c.Kind = KindSetFormat
		return c
	},
}

// Execute applies the command and returns a new run sequence. runs is
// never modified.
func (c Command) Execute(runs richdoc.Runs) (richdoc.Runs, error) {
	exec, ok := executors[c.Kind]
	if !ok {
		return nil, fmt.Errorf("command: unknown kind %s", c.Kind)
	}
	return exec(c, runs)
}

func (c Command) Inverse() Command {
	inv, ok := inverters[c.Kind]
	if !ok {
		return c
	}
	return inv(c)
}

func (c Command) String() string {
	return fmt.Sprintf("%s(run=%d at=%d to=%d text=%q whole=%t)", c.Kind, c.Run, c.At, c.To, c.Text, c.Whole)
}

// NewInsert builds an insert of text at rune offset at of run. An offset
// past the end of the run appends to that run; a run index past the end of
// the sequence appends to the last run. Inserting into an empty document
// creates a run of style fallback.
func NewInsert(runs richdoc.Runs, run, at int, text string, fallback richdoc.Style) Command {
	if len(runs) == 0 {
		return Command{Kind: KindInsert, Run: 0, Text: text, Style: fallback, Whole: true}
	}
	if run < 0 {
		run, at = 0, 0
	}
	if run >= len(runs) {
		run = len(runs) - 1
		at = runs[run].Len()
	}
	at = clamp(at, 0, runs[run].Len())
	return Command{Kind: KindInsert, Run: run, At: at, Text: text}
}

// NewRemove builds the removal of the rune range [from, to) of run. The
// removed text is captured verbatim; removing all of a run drops it.
func NewRemove(runs richdoc.Runs, run, from, to int) (Command, error) {
	if run < 0 || run >= len(runs) {
		return Command{}, fmt.Errorf("%w: remove from run %d of %d", ErrAddressing, run, len(runs))
	}
	text := []rune(runs[run].Text)
	if from < 0 || to > len(text) || from > to {
		return Command{}, fmt.Errorf("%w: remove %d..%d from run %d of length %d", ErrAddressing, from, to, run, len(text))
	}
	c := Command{Kind: KindRemove, Run: run, At: from, Text: string(text[from:to])}
	if from == 0 && to == len(text) {
		c.Whole = true
		c.Style = runs[run].Style
	}
	return c, nil
}

// NewSetFormat builds a format change of the rune range [from, to) of run.
func NewSetFormat(runs richdoc.Runs, run, from, to int, style richdoc.Style) (Command, error) {
	if run < 0 || run >= len(runs) {
		return Command{}, fmt.Errorf("%w: format run %d of %d", ErrAddressing, run, len(runs))
	}
	n := runs[run].Len()
	if from < 0 || to > n || from > to {
		return Command{}, fmt.Errorf("%w: format %d..%d of run %d of length %d", ErrAddressing, from, to, run, n)
	}
	pieces := 0
	for _, size := range []int{from, to - from, n - to} {
		if size > 0 {
			pieces++
		}
	}
	return Command{
		Kind:   KindSetFormat,
		Run:    run,
		At:     from,
		To:     to,
		Text:   runs[run].Text,
		Style:  style,
		Prev:   runs[run].Style,
		Pieces: pieces,
	}, nil
}

func execInsert(c Command, runs richdoc.Runs) (richdoc.Runs, error) {
	if c.Whole {
		if c.Run < 0 || c.Run > len(runs) {
			return nil, fmt.Errorf("%w: insert run at %d of %d", ErrAddressing, c.Run, len(runs))
		}
		out := make(richdoc.Runs, 0, len(runs)+1)
		out = append(out, runs[:c.Run]...)
		out = append(out, richdoc.Run{Style: c.Style, Text: c.Text})
		return append(out, runs[c.Run:]...), nil
	}
	if c.Run < 0 || c.Run >= len(runs) {
		return nil, fmt.Errorf("%w: insert into run %d of %d", ErrAddressing, c.Run, len(runs))
	}
	text := []rune(runs[c.Run].Text)
	if c.At < 0 || c.At > len(text) {
		return nil, fmt.Errorf("%w: insert at %d into run of length %d", ErrAddressing, c.At, len(text))
	}
	out := runs.Clone()
	out[c.Run].Text = string(text[:c.At]) + c.Text + string(text[c.At:])
	return out, nil
}

func execRemove(c Command, runs richdoc.Runs) (richdoc.Runs, error) {
	if c.Run < 0 || c.Run >= len(runs) {
		return nil, fmt.Errorf("%w: remove from run %d of %d", ErrAddressing, c.Run, len(runs))
	}
	text := []rune(runs[c.Run].Text)
	n := len([]rune(c.Text))
	if c.At < 0 || c.At+n > len(text) {
		return nil, fmt.Errorf("%w: remove %d..%d from run of length %d", ErrAddressing, c.At, c.At+n, len(text))
	}
	if got := string(text[c.At : c.At+n]); got != c.Text {
		return nil, fmt.Errorf("%w: run %d holds %q, expected %q", ErrAddressing, c.Run, got, c.Text)
	}
	if c.Whole {
		out := make(richdoc.Runs, 0, len(runs)-1)
		out = append(out, runs[:c.Run]...)
		return append(out, runs[c.Run+1:]...), nil
	}
	out := runs.Clone()
	out[c.Run].Text = string(text[:c.At]) + string(text[c.At+n:])
	return out, nil
}

func execSetFormat(c Command, runs richdoc.Runs) (richdoc.Runs, error) {
	if c.Run < 0 || c.Run >= len(runs) {
		return nil, fmt.Errorf("%w: format run %d of %d", ErrAddressing, c.Run, len(runs))
	}
	target := runs[c.Run]
	text := []rune(target.Text)
	if c.At < 0 || c.To > len(text) || c.At > c.To {
		return nil, fmt.Errorf("%w: format %d..%d of run of length %d", ErrAddressing, c.At, c.To, len(text))
	}
	split := []richdoc.Run{
		{Style: target.Style, Text: string(text[:c.At])},
		{Style: c.Style, Text: string(text[c.At:c.To])},
		{Style: target.Style, Text: string(text[c.To:])},
	}
	out := make(richdoc.Runs, 0, len(runs)+2)
	out = append(out, runs[:c.Run]...)
	for _, r := range split {
		if r.Text != "" {
			out = append(out, r)
		}
	}
	return append(out, runs[c.Run+1:]...), nil
}

func execRestoreFormat(c Command, runs richdoc.Runs) (richdoc.Runs, error) {
	end := c.Run + c.Pieces
	if c.Run < 0 || c.Pieces <= 0 || end > len(runs) {
		return nil, fmt.Errorf("%w: restore runs %d..%d of %d", ErrAddressing, c.Run, end, len(runs))
	}
	if got := runs[c.Run:end].Text(); got != c.Text {
		return nil, fmt.Errorf("%w: runs %d..%d hold %q, expected %q", ErrAddressing, c.Run, end, got, c.Text)
	}
	out := make(richdoc.Runs, 0, len(runs)-c.Pieces+1)
	out = append(out, runs[:c.Run]...)
	out = append(out, richdoc.Run{Style: c.Prev, Text: c.Text})
	return append(out, runs[end:]...), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
