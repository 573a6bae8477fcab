package boinord

import (
	"errors"
	"fmt"
)

// ErrorKind tags why a fetch failed.
type ErrorKind int

const (
	// KindAuthentication: the provider rejected the login.
	KindAuthentication ErrorKind = iota + 1
	// KindTransport: no usable HTTP response, or a non-200 status.
	KindTransport
	// KindSchema: a 200 response without the expected shape.
	KindSchema
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindTransport:
		return "transport"
	case KindSchema:
		return "schema"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrAuthentication = errors.New("boinord: login failed")
	ErrTransport      = errors.New("boinord: request failed")
	ErrSchema         = errors.New("boinord: unexpected response")
)

type Error struct {
	Kind ErrorKind
	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int
	Msg        string
	Err        error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.sentinel().Error()
	}
	if e.Kind == KindTransport && e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindAuthentication:
		return ErrAuthentication
	case KindTransport:
		return ErrTransport
	case KindSchema:
		return ErrSchema
	}
	return nil
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func authError() error {
	return &Error{Kind: KindAuthentication, Msg: "login failed, maybe the username or password is wrong"}
}

func transportError(status int, err error) error {
	return &Error{Kind: KindTransport, StatusCode: status, Msg: "failed to retrieve waitlist", Err: err}
}

func schemaError(format string, args ...any) error {
	return &Error{Kind: KindSchema, Msg: fmt.Sprintf(format, args...)}
}
