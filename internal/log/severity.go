// Package log is a small fluent logging context, trimmed from
// gapil/core/log's Context/Logger/Severity triad (see
// _examples/google-gapid/core/log/{context,logger,severity}.go). The
// teacher's version carries gapid's broadcast handlers, trace-chain
// tagging, and stack-filter machinery; none of that is needed by a
// resolver that only ever logs to one process's stderr, so this keeps the
// fluent At/Info/Error shape and the severity ordering and drops the rest.
package log

// Severity defines the severity of a logging message.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "?"
	}
}
