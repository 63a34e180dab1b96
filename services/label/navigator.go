package label

import (
	"qrlabel-go/catalog"
	"qrlabel-go/types"
	"qrlabel-go/x/mathx"
)

// NavigationState is the current selection. Item is always valid for Group.
type NavigationState struct {
	Group int
	Item  int
}

// SleepRequester receives the sleep command.
type SleepRequester interface {
	RequestSleep(now int64)
}

// Navigator owns the NavigationState and applies bound commands to it.
type Navigator struct {
	cat   *catalog.Catalog
	st    NavigationState
	clock *ActivityClock
	sleep SleepRequester
}

func NewNavigator(cat *catalog.Catalog, clock *ActivityClock, sleep SleepRequester) *Navigator {
	return &Navigator{cat: cat, clock: clock, sleep: sleep}
}

func (n *Navigator) State() NavigationState { return n.st }

func (n *Navigator) Current() catalog.Item { return n.cat.Item(n.st.Group, n.st.Item) }

func (n *Navigator) Catalog() *catalog.Catalog { return n.cat }

// Handle applies cmd; scale multiplies item deltas (the repeat step).
// Accepted moves stamp the activity clock and return a label refresh for
// the newly selected item.
func (n *Navigator) Handle(cmd types.Command, scale int, now int64) (RefreshRequest, bool) {
	switch cmd.Op {
	case types.OpItem:
		count := n.cat.ItemCount(n.st.Group)
		n.st.Item = mathx.WrapStep(n.st.Item, cmd.Delta*scale, count)
	case types.OpGroup:
		n.st.Group = mathx.WrapAdd(n.st.Group, 1, n.cat.GroupCount())
		n.st.Item = 0
	case types.OpSleep:
		if n.sleep != nil {
			n.sleep.RequestSleep(now)
		}
		return RefreshRequest{}, false
	default:
		return RefreshRequest{}, false
	}
	n.clock.Touch(now)
	return RefreshRequest{Kind: RefreshLabel, Item: n.Current()}, true
}
