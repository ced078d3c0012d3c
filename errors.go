package chartopts

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeInvalidVariant  = "invalid_variant"
	CodeUnsupported     = "unsupported"
	CodeUnsupportedType = "unsupported_type"
	CodeInvalidNumber   = "invalid_number"
	CodeInvalidEnum     = "invalid_enum"
	CodeRuleViolation   = "rule_violation"
	CodeUnknownGradient = "unknown_gradient"
	CodeTooDeep         = "too_deep"
)

var (
	// ErrUnsupported marks the write-only wire types. Decoding any of them
	// fails with an error matching both ErrUnsupported and errors.ErrUnsupported.
	ErrUnsupported = fmt.Errorf("chartopts: decoding is not supported: %w", errors.ErrUnsupported)

	// ErrInvalidVariant is returned by validating constructors when zero or
	// several arms of a one-of value are supplied.
	ErrInvalidVariant = errors.New("chartopts: exactly one variant must be set")
)

// Issue represents a single encode or construction failure.
type Issue struct {
	Path    string // JSON Pointer into the configuration tree (for example: /series/0/data).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		path := it.Path
		if path == "" {
			path = "/"
		}
		// e.g. invalid_number at /series/0/data: NaN is not representable
		fmt.Fprintf(b, "%s at %s", it.Code, path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is and errors.As see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func issueAt(path, code, msg string, cause error) Issues {
	return Issues{{Path: path, Code: code, Message: msg, Cause: cause}}
}

func unsupportedDecode(typeName string) error {
	return issueAt("", CodeUnsupported, typeName+" is write-only", ErrUnsupported)
}

func invalidVariant(typeName string, set int) error {
	return issueAt("", CodeInvalidVariant, fmt.Sprintf("%s: %d variants set", typeName, set), ErrInvalidVariant)
}
