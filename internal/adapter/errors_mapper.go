package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// messageExtractor pulls the platform error text out of a response body.
// It returns "" when the body carries no usable message.
type messageExtractor func(body []byte) string

// mapHTTPError converts a non-2xx response into a [*RemoteError]. The message
// comes from extract, falling back to the trimmed body and then to the status
// text.
func mapHTTPError(resp *resty.Response, extract messageExtractor) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return newRemoteError(resp.StatusCode(), remoteMessage(resp.Body(), resp.StatusCode(), extract))
}

// mapTransportError wraps a failure that happened before any response was
// received (dial, TLS, timeout, cancelled context).
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return err
	}
	return &RemoteError{Message: err.Error(), Err: errors.Join(ErrTransport, err)}
}

func newRemoteError(statusCode int, message string) *RemoteError {
	return &RemoteError{
		StatusCode: statusCode,
		Message:    message,
		Err:        statusSentinel(statusCode),
	}
}

func remoteMessage(body []byte, statusCode int, extract messageExtractor) string {
	if extract != nil {
		if msg := extract(body); msg != "" {
			return msg
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && !looksLikeJSON(text) {
		return text
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return "request failed"
}

func statusSentinel(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

func looksLikeJSON(text string) bool {
	return strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[")
}

// cloudflareErrorMessage reads errors[0].message of a v4 API envelope.
func cloudflareErrorMessage(body []byte) string {
	var env cloudflareEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.firstError()
}

// telegramErrorMessage reads the description of a Bot API response.
func telegramErrorMessage(body []byte) string {
	var env telegramEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Description
}
