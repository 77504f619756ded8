package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// RequestError is any failed call: transport failure, timeout or a non-2xx
// reply. Message holds the server's own explanation when it sent one.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
	RequestID  string
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: server returned %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	default:
		return e.Op + " failed"
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// UserMessage picks the text to show a user for err: the server's message
// when present, otherwise fallback, otherwise the error itself.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var rerr *RequestError
	if errors.As(err, &rerr) && rerr.Message != "" {
		return rerr.Message
	}
	if fallback != "" {
		return fallback
	}
	return err.Error()
}

func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if m := strings.TrimSpace(payload.Message); m != "" {
		return m
	}
	return strings.TrimSpace(payload.Error)
}
