package backend

import "errors"

var (
	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.New("review backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("review backend request timed out")

	// ErrUnexpectedStatus indicates a non-2xx HTTP response.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrDecode indicates the response body did not match the contract.
	ErrDecode = errors.New("malformed response body")

	// ErrRejected indicates a read answered with "status": false.
	ErrRejected = errors.New("request rejected by backend")
)
