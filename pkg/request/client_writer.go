package request

import (
	"errors"
	"net/http"
)

// ErrInternalServer is the message returned to the client when a handler
// panics.
var ErrInternalServer = errors.New("internal server error")

// ClientWriter is a http.ResponseWriter that remembers the status code
// written to it.
type ClientWriter struct {
	http.ResponseWriter

	// statusCode is the status code that was written.
	statusCode int
}

// NewClientWriter creates a new ClientWriter wrapping the given writer.
func NewClientWriter(w http.ResponseWriter) *ClientWriter {
	return &ClientWriter{
		ResponseWriter: w,
	}
}

// WriteHeader implements the http.ResponseWriter interface.
func (w *ClientWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implements the http.ResponseWriter interface.
func (w *ClientWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// StatusCode returns the status code that was written, defaulting to 200
// when the handler wrote a body without an explicit header.
func (w *ClientWriter) StatusCode() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}
