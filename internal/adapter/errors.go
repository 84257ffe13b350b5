package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("remote internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrTransport           = errors.New("transport error")

	ErrTokenInactive   = errors.New("api token is not active")
	ErrNoAccounts      = errors.New("no accounts found")
	ErrScriptNotFound  = errors.New("script not found in repository")
	ErrDecodingPayload = errors.New("error decoding remote payload")
)

// RemoteError is returned by every remote call that failed. Message is the
// text reported by the remote platform (or the transport error text) and is
// safe to show to the user. Err is one of the sentinels above so that callers
// can match the failure kind with [errors.Is].
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// RemoteMessage extracts the user-facing text of err. For a [RemoteError]
// this is the platform message, otherwise the plain error text.
func RemoteMessage(err error) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	return err.Error()
}
