package transport

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// failCodes holds the provider's documented failure statuses. Statuses
// outside this table fall back to the standard HTTP status text.
var failCodes = map[int]string{
	400: "Bad Request",
	401: "Unauthorized",
	403: "Resize not allowed",
	404: "Item not found",
	409: "Build in progress",
	413: "Over Limit",
	415: "Bad Media Type",
	500: "Fault",
	503: "Service Unavailable",
}

func statusText(code int) string {
	if text, ok := failCodes[code]; ok {
		return text
	}
	return http.StatusText(code)
}

// StatusError is a non-2xx response, passed through unchanged: privilege
// failures (403) are not distinguished from any other HTTP failure.
type StatusError struct {
	StatusCode int
	Status     string
	Method     string
	URL        string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Status)
}

// IsStatus reports whether err is a *StatusError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == statusCode
	}
	return false
}
