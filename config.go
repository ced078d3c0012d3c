package chartopts

import (
	"reflect"
	"sync"
)

const (
	DefaultGraphicNamespace = "echarts"
	DefaultRuntimeNamespace = "window.chartopts"
	DefaultMaxDepth         = 64
)

// Config is an immutable rule set plus the output settings it was built
// with. It is safe for concurrent use.
type Config struct {
	rules     []Rule
	graphicNS string
	runtimeNS string
	indent    string
	maxDepth  int

	memo sync.Map // reflect.Type -> ruleSlot
}

type ruleSlot struct{ rule Rule }

// NewConfig builds a rule set: the built-in rules, then s.Rules, then the
// external data rules. Lookup walks the list from the back, so later
// registrations win.
func NewConfig(s Settings) *Config {
	c := &Config{
		graphicNS: s.GraphicNamespace,
		runtimeNS: s.RuntimeNamespace,
		indent:    s.Indent,
		maxDepth:  s.MaxDepth,
	}
	if c.graphicNS == "" {
		c.graphicNS = DefaultGraphicNamespace
	}
	if c.runtimeNS == "" {
		c.runtimeNS = DefaultRuntimeNamespace
	}
	if c.maxDepth <= 0 {
		c.maxDepth = DefaultMaxDepth
	}
	builtin := builtinRules()
	data := dataRules()
	c.rules = make([]Rule, 0, len(builtin)+len(s.Rules)+len(data))
	c.rules = append(c.rules, builtin...)
	for _, r := range s.Rules {
		if r != nil {
			c.rules = append(c.rules, r)
		}
	}
	c.rules = append(c.rules, data...)
	Logger().Debug("built serializer configuration", "rules", len(c.rules), "extensions", len(s.Rules))
	return c
}

// Rules returns the registered rules in registration order.
func (c *Config) Rules() []Rule { return append([]Rule(nil), c.rules...) }

func (c *Config) GraphicNamespace() string { return c.graphicNS }
func (c *Config) RuntimeNamespace() string { return c.runtimeNS }

func (c *Config) ruleFor(t reflect.Type) Rule {
	if s, ok := c.memo.Load(t); ok {
		return s.(ruleSlot).rule
	}
	var found Rule
	for i := len(c.rules) - 1; i >= 0; i-- {
		if c.rules[i].Handles(t) {
			found = c.rules[i]
			break
		}
	}
	c.memo.Store(t, ruleSlot{rule: found})
	return found
}

type sharedConfig struct {
	once sync.Once
	cfg  *Config
}

var shared = &sharedConfig{}

// ConfigFor returns the Config for s. With cache set it returns the shared
// Config, building it from s on first use only: once built, its rule set is
// frozen and the Settings of later callers are ignored. Callers that need
// different extension rules must pass cache=false.
func ConfigFor(s Settings, cache bool) *Config {
	if !cache {
		return NewConfig(s)
	}
	sc := shared
	built := false
	sc.once.Do(func() {
		sc.cfg = NewConfig(s)
		built = true
	})
	if !built && len(s.Rules) > 0 {
		Logger().Debug("shared serializer configuration already built; extension rules ignored", "rules", len(s.Rules))
	}
	return sc.cfg
}

// SharedConfig returns the shared Config, building it with default Settings
// if no caching call has happened yet.
func SharedConfig() *Config { return ConfigFor(Settings{}, true) }
