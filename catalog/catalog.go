// Package catalog holds the read-only item catalog browsed by the label
// device: an ordered list of groups, each an ordered list of items.
package catalog

import (
	"strconv"

	"qrlabel-go/errcode"
)

// Item is one selectable entry: the text shown on the label and the numeric
// code encoded into the QR payload.
type Item struct {
	Label string `toml:"label"`
	Code  int    `toml:"code"`
}

// Group is a named, non-empty, ordered run of items.
type Group struct {
	Name  string `toml:"name"`
	Items []Item `toml:"items"`
}

// Catalog is immutable after New returns.
type Catalog struct {
	groups []Group
}

// New validates groups and returns a Catalog that owns a copy of them.
// Empty catalogs and empty groups are rejected: index arithmetic downstream
// takes the modulo of these lengths.
func New(groups []Group) (*Catalog, error) {
	if len(groups) == 0 {
		return nil, errcode.New(errcode.EmptyCatalog, "catalog.new", "no groups")
	}
	own := make([]Group, len(groups))
	for i, g := range groups {
		if len(g.Items) == 0 {
			name := g.Name
			if name == "" {
				name = "#" + strconv.Itoa(i)
			}
			return nil, errcode.New(errcode.EmptyGroup, "catalog.new", "group "+strconv.Quote(name)+" has no items")
		}
		own[i] = Group{Name: g.Name, Items: append([]Item(nil), g.Items...)}
	}
	return &Catalog{groups: own}, nil
}

// MustNew is New for static catalogs compiled into the firmware.
func MustNew(groups []Group) *Catalog {
	c, err := New(groups)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) GroupCount() int { return len(c.groups) }

// ItemCount returns the number of items in group g.
func (c *Catalog) ItemCount(g int) int { return len(c.groups[g].Items) }

func (c *Catalog) GroupName(g int) string { return c.groups[g].Name }

// Item returns item i of group g. Indices must be in range.
func (c *Catalog) Item(g, i int) Item { return c.groups[g].Items[i] }
