package core

// ErrorKind is the closed set of upstream failures the orchestrator can
// report. Every kind maps to a bad-gateway status at the HTTP boundary.
type ErrorKind int

const (
	KindUpstreamBrief ErrorKind = iota + 1
	KindUpstreamImage
	KindResponseShape
)

// Error carries the caller-facing detail text along with its kind.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}
