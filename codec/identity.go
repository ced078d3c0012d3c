package codec

import (
	"github.com/reoring/chartopts"
)

// Plain returns a Rule that encodes T with plain JSON encoding, bypassing
// every other rule (struct tags apply, naming and omission rules do not).
func Plain[T any]() chartopts.Rule {
	return chartopts.RuleFor(func(e *chartopts.Encoder, v T) error {
		return e.JSON(v)
	})
}

// JSONFunc returns a Rule that converts T with fn and encodes the result with
// the full rule set.
func JSONFunc[T any](fn func(T) (any, error)) chartopts.Rule {
	return chartopts.RuleFor(func(e *chartopts.Encoder, v T) error {
		out, err := fn(v)
		if err != nil {
			return err
		}
		return e.Value(out)
	})
}

// RawFunc returns a Rule that renders T as a raw JavaScript expression.
func RawFunc[T any](fn func(T) (string, error)) chartopts.Rule {
	return chartopts.RuleFor(func(e *chartopts.Encoder, v T) error {
		expr, err := fn(v)
		if err != nil {
			return err
		}
		return e.Raw(expr)
	})
}
