package service

// ResponseType enumerates the service outcomes handlers translate to HTTP
// statuses
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// Unauthorised response
	Unauthorised

	// Suppressed response - the request was valid but a user preference
	// turned it into a soft no-op
	Suppressed
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"unauthorised",
	"suppressed",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
