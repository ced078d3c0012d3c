package chart

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"

	"github.com/reoring/chartopts"
)

// Renderer selects the ECharts rendering backend.
type Renderer int

const (
	RendererSvg Renderer = iota + 1
	RendererCanvas
)

var rendererNames = []string{"", "Svg", "Canvas"}

func (r Renderer) EnumName() string { return chartopts.EnumNameOf(rendererNames, r) }

// InitOptions is passed to echarts.init.
type InitOptions struct {
	Renderer string `json:"renderer,omitempty"`
	Width    string `json:"width,omitempty"`
	Height   string `json:"height,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

// DataLoader refreshes chart data before the options are serialized.
type DataLoader func(ctx context.Context, c *Chart) error

// Chart is one chart instance bound to a Runtime.
type Chart struct {
	// ID names the chart element. It must not change after Init.
	ID       string
	Theme    string
	Renderer Renderer
	// Width and Height are CSS sizes, for example "800px" or "100%".
	Width  string
	Height string
	Locale string

	// Options is the configuration tree, typically *options.ChartOptions.
	Options     any
	Maps        []chartopts.MapDefinition
	DataSources []*chartopts.ExternalDataSource

	// Settings and NoCache select the serializer Config as in
	// chartopts.SerializeOpt.
	Settings chartopts.Settings
	NoCache  bool

	// DataLoader, when set, runs before Init and before Update calls that
	// ask for it.
	DataLoader DataLoader

	// Group, when set, connects the chart with the other members on Init.
	Group *Group

	// Logger receives teardown failures. nil uses chartopts.Logger().
	Logger *log.Logger

	rt Runtime
}

// New returns a chart bound to rt with a generated ID and the SVG renderer.
func New(rt Runtime, opts any) *Chart {
	return &Chart{ID: NewID(), Renderer: RendererSvg, Options: opts, rt: rt}
}

// NewID returns a random element ID of the form "chart<32 hex digits>".
func NewID() string { return "chart" + chartopts.NewFetchID() }

// Config returns the serializer Config the chart encodes with.
func (c *Chart) Config() *chartopts.Config {
	return chartopts.ConfigFor(c.Settings, !c.NoCache)
}

// Payload serializes the chart. Maps are included when inlineMaps is set.
func (c *Chart) Payload(inlineMaps bool) (chartopts.Payload, error) {
	if c.Options == nil {
		return chartopts.Payload{}, fmt.Errorf("chart %s: no options", c.ID)
	}
	return c.Config().Serialize(chartopts.Input{
		Options:     c.Options,
		Maps:        c.Maps,
		DataSources: c.DataSources,
	}, inlineMaps)
}

// InitOptions returns the echarts.init options of the chart.
func (c *Chart) InitOptions() InitOptions {
	return InitOptions{
		Renderer: chartopts.EnumToken(c.renderer()),
		Width:    c.Width,
		Height:   c.Height,
		Locale:   c.Locale,
	}
}

// Init creates the chart in the runtime, registering maps and starting the
// data fetches.
func (c *Chart) Init(ctx context.Context) error {
	if err := c.load(ctx); err != nil {
		return err
	}
	p, err := c.Payload(true)
	if err != nil {
		return err
	}
	init, err := json.Marshal(c.InitOptions())
	if err != nil {
		return err
	}
	if err := c.rt.InvokeVoid(ctx, c.fn("initChart"),
		c.ID, optional(c.Theme), string(init), p.Chart.String(), optionalBytes(p.Maps), optionalBytes(p.Fetch)); err != nil {
		return err
	}
	if c.Group == nil {
		return nil
	}
	c.Group.join(c.ID)
	return c.rt.InvokeVoid(ctx, c.fn("connectChart"), c.ID, c.Group.Name)
}

// Update re-serializes the options and applies them to the existing chart.
// Maps are registered once by Init and are not sent again.
func (c *Chart) Update(ctx context.Context, executeDataLoader bool) error {
	if executeDataLoader {
		if err := c.load(ctx); err != nil {
			return err
		}
	}
	p, err := c.Payload(false)
	if err != nil {
		return err
	}
	return c.rt.InvokeVoid(ctx, c.fn("updateChart"),
		c.ID, p.Chart.String(), optionalBytes(p.Maps), optionalBytes(p.Fetch))
}

// Clear removes all components and series from the chart. Runtime failures
// are logged and dropped.
func (c *Chart) Clear(ctx context.Context) {
	if err := c.rt.InvokeVoid(ctx, c.fn("clearChart"), c.ID); err != nil {
		c.logger().Warn("clear chart failed", "id", c.ID, "err", err)
	}
}

// Dispose leaves the chart's group and releases the chart in the runtime.
// Runtime failures are logged and dropped.
func (c *Chart) Dispose(ctx context.Context) {
	if c.Group != nil {
		c.Group.Remove(c)
	}
	if err := c.rt.InvokeVoid(ctx, c.fn("disposeChart"), c.ID); err != nil {
		c.logger().Warn("dispose chart failed", "id", c.ID, "err", err)
	}
}

func (c *Chart) load(ctx context.Context) error {
	if c.DataLoader == nil {
		return nil
	}
	if err := c.DataLoader(ctx, c); err != nil {
		return fmt.Errorf("chart %s: load data: %w", c.ID, err)
	}
	return nil
}

func (c *Chart) fn(name string) string { return c.Config().RuntimeNamespace() + "." + name }

func (c *Chart) renderer() Renderer {
	if c.Renderer == 0 {
		return RendererSvg
	}
	return c.Renderer
}

func (c *Chart) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return chartopts.Logger()
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optionalBytes(b []byte) any {
	if b == nil {
		return nil
	}
	return string(b)
}
