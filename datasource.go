package chartopts

import (
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ExternalDataFetchAs selects how the runtime reads a fetched response.
type ExternalDataFetchAs int

const (
	FetchAsJSON ExternalDataFetchAs = iota
	FetchAsString
)

var fetchAsNames = []string{"Json", "String"}

func (f ExternalDataFetchAs) EnumName() string { return EnumNameOf(fetchAsNames, f) }

// FetchOptions mirrors the subset of the browser fetch() init object the
// runtime forwards.
type FetchOptions struct {
	Method      string            `json:"method,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        string            `json:"body,omitempty"`
	Mode        string            `json:"mode,omitempty"`
	Credentials string            `json:"credentials,omitempty"`
	Cache       string            `json:"cache,omitempty"`
}

// ExternalDataSource declares a remote resource the runtime fetches before
// it evaluates the chart options. Path, when set, is applied by the runtime
// to the fetched JSON document.
//
// An ExternalDataSource must not be copied after its FetchID has been read.
type ExternalDataSource struct {
	URL     string
	FetchAs ExternalDataFetchAs
	Path    string
	Options *FetchOptions

	idOnce  sync.Once
	fetchID string
}

// NewExternalDataSource returns a source for url with a generated FetchID.
func NewExternalDataSource(url string) *ExternalDataSource {
	s := &ExternalDataSource{URL: url}
	s.FetchID()
	return s
}

// NewExternalDataSourceWithID returns a source with a caller-chosen FetchID.
// An empty id falls back to a generated one.
func NewExternalDataSourceWithID(id, url string) *ExternalDataSource {
	return &ExternalDataSource{URL: url, fetchID: id}
}

// NewFetchID returns a new 32 character hexadecimal identifier.
func NewFetchID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// FetchID returns the key the runtime caches the fetched data under. It is
// generated on first use and stable afterwards.
func (s *ExternalDataSource) FetchID() string {
	s.idOnce.Do(func() {
		if s.fetchID == "" {
			s.fetchID = NewFetchID()
		}
	})
	return s.fetchID
}

// Ref returns a reference to the root of the fetched data.
func (s *ExternalDataSource) Ref() ExternalDataSourceRef {
	return ExternalDataSourceRef{FetchID: s.FetchID()}
}

// RefPath returns a reference to path inside the fetched data.
func (s *ExternalDataSource) RefPath(path string) ExternalDataSourceRef {
	return ExternalDataSourceRef{FetchID: s.FetchID(), Path: path}
}

// Command derives the fetch command the runtime executes for s.
func (s *ExternalDataSource) Command() FetchCommand {
	return FetchCommand{
		ID:      s.FetchID(),
		URL:     s.URL,
		FetchAs: EnumToken(s.FetchAs),
		Path:    s.Path,
		Options: s.Options,
	}
}

func (s *ExternalDataSource) UnmarshalJSON([]byte) error {
	return unsupportedDecode("ExternalDataSource")
}

// ExternalDataSourceRef points at data fetched by an ExternalDataSource.
// It knows nothing about fetch state; the runtime resolves it when it
// evaluates the chart options.
type ExternalDataSourceRef struct {
	FetchID string
	// Path is a property path appended to the lookup, for example "rows" or
	// ".rows[0]". Empty means the root of the fetched data.
	Path string
}

// NewExternalDataSourceRef returns a reference by FetchID.
func NewExternalDataSourceRef(fetchID, path string) ExternalDataSourceRef {
	return ExternalDataSourceRef{FetchID: fetchID, Path: path}
}

func (r ExternalDataSourceRef) IsZero() bool { return r.FetchID == "" }

// Expression renders the runtime lookup, for example
// window.chartopts.getDataSource('abc').rows.
func (r ExternalDataSourceRef) Expression(runtimeNamespace string) string {
	var b strings.Builder
	b.WriteString(runtimeNamespace)
	b.WriteString(".getDataSource('")
	b.WriteString(jsStringEscaper.Replace(r.FetchID))
	b.WriteString("')")
	if r.Path != "" {
		if !strings.HasPrefix(r.Path, ".") {
			b.WriteByte('.')
		}
		b.WriteString(r.Path)
	}
	return b.String()
}

func (r *ExternalDataSourceRef) UnmarshalJSON([]byte) error {
	return unsupportedDecode("ExternalDataSourceRef")
}

var jsStringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// FetchCommand is the strict-JSON record the runtime fetch layer consumes.
type FetchCommand struct {
	ID      string        `json:"id"`
	URL     string        `json:"url"`
	FetchAs string        `json:"fetchAs"`
	Path    string        `json:"path,omitempty"`
	Options *FetchOptions `json:"options,omitempty"`
}

func (c *FetchCommand) UnmarshalJSON([]byte) error { return unsupportedDecode("FetchCommand") }

// FetchCommands is the list handed to the runtime fetch layer. Like its
// elements it is write-only, including the empty list.
type FetchCommands []FetchCommand

func (c *FetchCommands) UnmarshalJSON([]byte) error { return unsupportedDecode("FetchCommands") }

// EncodeFetchCommands converts each non-nil source 1:1 to a FetchCommand
// and encodes the list as plain JSON. It returns nil when no source is left.
func EncodeFetchCommands(sources []*ExternalDataSource) ([]byte, error) {
	cmds := make(FetchCommands, 0, len(sources))
	for _, s := range sources {
		if s == nil {
			continue
		}
		cmds = append(cmds, s.Command())
	}
	if len(cmds) == 0 {
		return nil, nil
	}
	return json.MarshalNoEscape(cmds)
}

func encodeDataSourceRef(e *Encoder, r ExternalDataSourceRef) error {
	if r.IsZero() {
		return e.Null()
	}
	return e.Raw(r.Expression(e.Config().RuntimeNamespace()))
}
