package app

type Action string

const (
	ActionTypePassword Action = "type-password"
	ActionTypeUsername Action = "type-username"
	ActionTypeBoth     Action = "autotype"
	ActionCopyPassword Action = "copy-password"
	ActionCopyUsername Action = "copy-username"
)

var AllActions = []Action{
	ActionTypePassword,
	ActionTypeUsername,
	ActionTypeBoth,
	ActionCopyPassword,
	ActionCopyUsername,
}

// Credential is fetched per run and discarded once delivered.
type Credential struct {
	Username string
	Password string
}

type BackendKind string

const (
	KindSelector    BackendKind = "selector"
	KindClipboarder BackendKind = "clipboarder"
	KindTyper       BackendKind = "typer"
)

var AllBackendKinds = []BackendKind{KindSelector, KindClipboarder, KindTyper}

// Options is the resolved configuration for a run. It is built once at startup.
type Options struct {
	Action      Action
	Prompt      string
	RofiArgs    []string
	ShowHelp    bool
	Selector    string
	Clipboarder string
	Typer       string
}

func DefaultOptions() Options {
	return Options{
		Action:   ActionTypePassword,
		Prompt:   "Select entry",
		ShowHelp: true,
	}
}

// Override returns the explicit backend name configured for kind, if any.
func (o Options) Override(kind BackendKind) string {
	switch kind {
	case KindSelector:
		return o.Selector
	case KindClipboarder:
		return o.Clipboarder
	case KindTyper:
		return o.Typer
	default:
		return ""
	}
}

type SelectionRequest struct {
	Entries   []string
	Prompt    string
	ShowHelp  bool
	ExtraArgs []string
}

type SelectionResult struct {
	ExitCode int
	Line     string
}

type BackendStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

type BackendReport struct {
	Kind       BackendKind     `json:"kind"`
	Override   string          `json:"override,omitempty"`
	Candidates []BackendStatus `json:"candidates"`
	Error      string          `json:"error,omitempty"`
}
