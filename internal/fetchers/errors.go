package fetchers

import "errors"

// Fetch failure classes. Every failed fetch wraps exactly one of these so
// callers can classify with errors.Is. A curve length mismatch is not an
// error: the reading is still returned and the caller keeps the previous
// curves.
var (
	// ErrConfigMissing means a required endpoint or credential is absent;
	// the source fails fast without touching the network.
	ErrConfigMissing = errors.New("source not configured")

	// ErrAuthFailed means the authentication step was rejected or returned
	// a malformed body.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRequestFailed means the energy request failed at the transport or
	// status level.
	ErrRequestFailed = errors.New("energy request failed")

	// ErrParseFailed means the response body is not well-formed JSON.
	ErrParseFailed = errors.New("malformed energy response")
)
