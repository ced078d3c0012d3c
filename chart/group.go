package chart

import (
	"context"
	"slices"
	"sync"

	"github.com/reoring/chartopts"
)

// Group connects charts so that tooltips, axis pointers and data zoom act
// on all members together. The runtime joins a chart to its group during
// Init; Dispose leaves the group.
type Group struct {
	// Name is the ECharts group id shared by the members.
	Name string

	mu      sync.Mutex
	members []string
}

// NewGroup returns a group named name, or "group<32 hex digits>" when name
// is empty.
func NewGroup(name string) *Group {
	if name == "" {
		name = "group" + chartopts.NewFetchID()
	}
	return &Group{Name: name}
}

// Add assigns c to g. The runtime connects it on the next Init.
func (g *Group) Add(c *Chart) {
	c.Group = g
	g.join(c.ID)
}

// Remove takes c out of g.
func (g *Group) Remove(c *Chart) {
	if c.Group == g {
		c.Group = nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members = slices.DeleteFunc(g.members, func(id string) bool { return id == c.ID })
}

// Members returns the chart IDs in the group in joining order.
func (g *Group) Members() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.members)
}

func (g *Group) join(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !slices.Contains(g.members, id) {
		g.members = append(g.members, id)
	}
}

// SetRuntimeLogging switches console logging of fetches, map registrations
// and chart options in the runtime under namespace. An empty namespace
// means chartopts.DefaultRuntimeNamespace.
func SetRuntimeLogging(ctx context.Context, rt Runtime, namespace string, enabled bool) error {
	if namespace == "" {
		namespace = chartopts.DefaultRuntimeNamespace
	}
	return rt.InvokeVoid(ctx, namespace+".changeLogging", enabled)
}
