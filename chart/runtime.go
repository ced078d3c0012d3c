package chart

import (
	"context"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// Runtime invokes functions in the JavaScript runtime hosting the chart.
// identifier is a dotted global path such as "window.chartopts.initChart".
type Runtime interface {
	InvokeVoid(ctx context.Context, identifier string, args ...any) error
}

// RuntimeFunc adapts a function to Runtime.
type RuntimeFunc func(ctx context.Context, identifier string, args ...any) error

func (f RuntimeFunc) InvokeVoid(ctx context.Context, identifier string, args ...any) error {
	return f(ctx, identifier, args...)
}

// ScriptRuntime records invocations as JavaScript call statements.
// Arguments are written as JSON literals, with <, > and & escaped so the
// script is safe inside an HTML script element. It is safe for concurrent
// use.
type ScriptRuntime struct {
	mu    sync.Mutex
	stmts []string
}

func (r *ScriptRuntime) InvokeVoid(ctx context.Context, identifier string, args ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(identifier)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		lit, err := json.Marshal(a)
		if err != nil {
			return err
		}
		b.Write(lit)
	}
	b.WriteString(");")

	r.mu.Lock()
	r.stmts = append(r.stmts, b.String())
	r.mu.Unlock()
	return nil
}

// Statements returns the recorded statements in call order.
func (r *ScriptRuntime) Statements() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.stmts...)
}

// Script returns the recorded statements awaited in order inside an async
// function expression that runs immediately.
func (r *ScriptRuntime) Script() string {
	stmts := r.Statements()
	var b strings.Builder
	b.WriteString("(async () => {\n")
	for _, s := range stmts {
		b.WriteString("  await ")
		b.WriteString(s)
		b.WriteByte('\n')
	}
	b.WriteString("})();\n")
	return b.String()
}

// Reset drops the recorded statements.
func (r *ScriptRuntime) Reset() {
	r.mu.Lock()
	r.stmts = nil
	r.mu.Unlock()
}
