package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/reoring/chartopts"
	"github.com/reoring/chartopts/i18n"
	"github.com/reoring/chartopts/internal/document"
)

// Report writes err to w with localized titles. Encode issues are listed
// one per line.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	if iss, ok := chartopts.AsIssues(err); ok {
		for _, it := range iss {
			path := it.Path
			if path == "" {
				path = "/"
			}
			title := i18n.T(it.Code, map[string]string{"path": path})
			if it.Message != "" {
				fmt.Fprintf(w, "%s: %s (%s)\n", path, title, it.Message)
			} else {
				fmt.Fprintf(w, "%s: %s\n", path, title)
			}
		}
		return
	}
	var dup *document.DuplicateKeyError
	if errors.As(err, &dup) {
		fmt.Fprintf(w, "%s: %v\n", i18n.T("duplicate_key", map[string]string{"key": dup.Key}), err)
		return
	}
	var de *document.Error
	if errors.As(err, &de) {
		fmt.Fprintf(w, "%s: %v\n", i18n.T("document", map[string]string{"path": de.Path}), err)
		return
	}
	fmt.Fprintln(w, err)
}
