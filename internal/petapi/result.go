package petapi

import (
	"errors"

	"github.com/nfrund/petcommunity/internal/domain"
)

// Response statuses used by the Pet API envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Fallback messages shown when the API does not supply one.
const (
	DefaultLoginMessage     = "Invalid login credentials"
	DefaultRegisterMessage  = "Registration failed"
	DefaultTransportMessage = "Unable to reach the server"
)

// Result is the normalized outcome of a mutating call. It never carries a
// panic or a bare transport error to the view: Status is always set, Message
// is always displayable, and Err keeps the cause for logging.
type Result struct {
	Status  string
	Message string
	Err     error
}

// OK reports whether the call succeeded.
func (r Result) OK() bool { return r.Status == StatusSuccess }

// User is the identity returned by a successful login.
type User struct {
	ID       domain.ID `json:"id"`
	Username string    `json:"username,omitempty"`
}

// LoginResult is the normalized outcome of Login.
type LoginResult struct {
	Result
	User        *User
	AccessToken string
}

// envelope is the common response shape of the API. Some endpoints report
// errors under "msg" instead of "message".
type envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Msg     string `json:"msg,omitempty"`
	Data    *T     `json:"data,omitempty"`
}

func (e envelope[T]) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Msg
}

type loginEnvelope struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	Msg         string `json:"msg,omitempty"`
	User        *User  `json:"user,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
}

// normalize turns a decoded envelope and the transport error into a Result.
func normalize(status, message string, err error, fallback string) Result {
	switch {
	case errors.Is(err, domain.ErrTransport):
		return Result{Status: StatusError, Message: DefaultTransportMessage, Err: err}
	case err != nil:
		return Result{Status: StatusError, Message: orDefault(message, fallback), Err: err}
	case status != StatusSuccess:
		return Result{Status: StatusError, Message: orDefault(message, fallback), Err: domain.ErrRejected}
	default:
		return Result{Status: StatusSuccess, Message: message}
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
