package types

import (
	"strconv"
	"strings"

	"qrlabel-go/errcode"
)

// Op is the navigation operation a button event is bound to.
type Op uint8

const (
	OpNone  Op = iota
	OpItem     // move the item index by Delta within the current group
	OpGroup    // advance to the next group, item index resets to 0
	OpSleep    // request the Sleeping power state
)

// Command is a button binding as written in board profiles:
//
//	""          no action
//	"item:+1"   next item
//	"item:-10"  ten items back
//	"group:next"
//	"sleep"
type Command struct {
	Op    Op
	Delta int
}

var (
	CmdNone      = Command{}
	CmdNextGroup = Command{Op: OpGroup, Delta: 1}
	CmdSleep     = Command{Op: OpSleep}
)

// Item returns an item-move command.
func Item(delta int) Command { return Command{Op: OpItem, Delta: delta} }

func ParseCommand(s string) (Command, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "none":
		return CmdNone, nil
	case "sleep":
		return CmdSleep, nil
	case "group:next":
		return CmdNextGroup, nil
	}
	if rest, ok := strings.CutPrefix(s, "item:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n == 0 {
			return CmdNone, errcode.New(errcode.InvalidCommand, "command.parse", strconv.Quote(s))
		}
		return Item(n), nil
	}
	return CmdNone, errcode.New(errcode.InvalidCommand, "command.parse", strconv.Quote(s))
}

func (c Command) String() string {
	switch c.Op {
	case OpItem:
		if c.Delta >= 0 {
			return "item:+" + strconv.Itoa(c.Delta)
		}
		return "item:" + strconv.Itoa(c.Delta)
	case OpGroup:
		return "group:next"
	case OpSleep:
		return "sleep"
	default:
		return ""
	}
}

func (c Command) IsNone() bool { return c.Op == OpNone }

func (c *Command) UnmarshalText(b []byte) error {
	v, err := ParseCommand(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Command) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
