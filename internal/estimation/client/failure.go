package client

// FailureKind distinguishes why an estimate request failed. Retry guidance
// keys off the kind, not the message text.
type FailureKind int

const (
	// FailureTransport covers network faults: DNS failure, connection
	// refused, broken connections.
	FailureTransport FailureKind = iota
	// FailureTimeout means the request exceeded the fixed deadline; a retry
	// may well succeed.
	FailureTimeout
	// FailureServer means the server answered with a non-2xx status.
	FailureServer
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureTimeout:
		return "timeout"
	case FailureServer:
		return "server"
	}
	return "unknown"
}

// Failure describes one failed estimate attempt. It is terminal for that
// attempt only; nothing is retried automatically.
type Failure struct {
	Kind    FailureKind
	Message string
	// PartialDetails carries any breakdown detail the error payload included,
	// rendered as a degraded estimate view alongside the failure message.
	PartialDetails map[string]int
}

func (f *Failure) Error() string {
	return f.Message
}
