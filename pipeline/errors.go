package pipeline

import "fmt"

type ErrorKind int

const (
	// KindConfig means required configuration is missing; nothing was called.
	KindConfig ErrorKind = iota + 1
	// KindPolicy means the image model refused the prompt. Expected outcome,
	// shown to the user as-is.
	KindPolicy
	// KindUpstream is any other failure from a vision, dialogue, synthesis or
	// storage call.
	KindUpstream
)

// Error carries the failure kind through the pipeline so the HTTP layer can
// translate it to a status code exactly once.
type Error struct {
	Kind ErrorKind
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Code
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func configError(code string) *Error {
	return &Error{Kind: KindConfig, Code: code, Err: fmt.Errorf("server misconfigured: %s", code)}
}

func policyError(code string, err error) *Error {
	return &Error{Kind: KindPolicy, Code: code, Err: err}
}

func upstreamError(code string, err error) *Error {
	return &Error{Kind: KindUpstream, Code: code, Err: err}
}

// KindOf classifies any error; non-pipeline errors count as upstream.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUpstream
}
