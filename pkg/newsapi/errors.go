package newsapi

import "fmt"

// ErrKind classifies a failed fetch
type ErrKind int

const (
	// ErrNoInternet indicates the connectivity monitor reports offline
	ErrNoInternet ErrKind = iota
	// ErrInvalidURL indicates the request URL could not be built
	ErrInvalidURL
	// ErrNoData indicates the server returned an empty body
	ErrNoData
	// ErrDecoding indicates the response body could not be decoded
	ErrDecoding
	// ErrServer indicates a non-200 HTTP status
	ErrServer
	// ErrUnknown covers transport and other unclassified failures
	ErrUnknown
)

// Error is a classified network error. Messages are fixed and user-visible.
type Error struct {
	Kind       ErrKind
	StatusCode int // set for ErrServer only
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNoInternet:
		return "No internet connection available"
	case ErrInvalidURL:
		return "Invalid URL"
	case ErrNoData:
		return "No data received"
	case ErrDecoding:
		return "Failed to decode response"
	case ErrServer:
		return fmt.Sprintf("Server error with code: %d", e.StatusCode)
	default:
		return "An unknown error occurred"
	}
}

// Is makes errors.Is match on the error kind, ignoring the status code
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
