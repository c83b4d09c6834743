// Package command parses the input buffer into a journal command and applies
// it to a task store.
package command

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/task"
)

// Kind identifies a parsed command.
type Kind int

const (
	Invalid Kind = iota
	AddTask
	DeleteTask
	Toggle
	Quit
)

func (k Kind) String() string {
	switch k {
	case AddTask:
		return "add"
	case DeleteTask:
		return "del"
	case Toggle:
		return "done"
	case Quit:
		return "quit"
	default:
		return "invalid"
	}
}

// Command is the structured form of one line of input. Text is set for
// AddTask, Index for DeleteTask and Toggle.
type Command struct {
	Kind  Kind
	Text  string
	Index int
}

const (
	prefixAdd  = "add "
	prefixDel  = "del "
	prefixDone = "done "
)

// Parse trims input and matches it against the command grammar. The first
// matching prefix wins and matching is case-sensitive. Anything unrecognised,
// including a del/done argument that is not a non-negative integer, is
// Invalid.
func Parse(input string) Command {
	in := strings.TrimSpace(input)
	switch {
	case strings.HasPrefix(in, prefixAdd):
		return Command{Kind: AddTask, Text: in[len(prefixAdd):]}
	case strings.HasPrefix(in, prefixDel):
		return indexed(DeleteTask, in[len(prefixDel):])
	case strings.HasPrefix(in, prefixDone):
		return indexed(Toggle, in[len(prefixDone):])
	case in == "q" || in == "quit":
		return Command{Kind: Quit}
	default:
		return Command{Kind: Invalid}
	}
}

func indexed(kind Kind, arg string) Command {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || n > math.MaxInt {
		return Command{Kind: Invalid}
	}
	return Command{Kind: kind, Index: int(n)}
}

func (c Command) String() string {
	switch c.Kind {
	case AddTask:
		return prefixAdd + c.Text
	case DeleteTask:
		return fmt.Sprintf("%s%d", prefixDel, c.Index)
	case Toggle:
		return fmt.Sprintf("%s%d", prefixDone, c.Index)
	case Quit:
		return "quit"
	default:
		return "invalid"
	}
}

// Target is the subset of the task store a command mutates.
type Target interface {
	Add(content string, typ task.Type, day journal.Day)
	Toggle(day journal.Day, index int) bool
	Delete(day journal.Day, index int) bool
}

// Result reports what applying a command did.
type Result struct {
	// Changed is true when the store was mutated. Out of range indexes leave
	// it false; they are not errors.
	Changed bool
	Quit    bool
}

// Apply runs c against target for day. New tasks are always todos.
func Apply(c Command, target Target, day journal.Day) Result {
	switch c.Kind {
	case AddTask:
		target.Add(c.Text, task.Todo, day)
		return Result{Changed: true}
	case DeleteTask:
		return Result{Changed: target.Delete(day, c.Index)}
	case Toggle:
		return Result{Changed: target.Toggle(day, c.Index)}
	case Quit:
		return Result{Quit: true}
	default:
		return Result{}
	}
}
