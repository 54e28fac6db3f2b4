package domain

import "errors"

// ErrInvalidInput marks caller-supplied data that fails validation. The
// caller can recover by correcting the input; nothing is retried.
var ErrInvalidInput = errors.New("invalid input")

// ErrUpstreamUnavailable marks a failed upstream fetch: network fault,
// timeout, non-success status, or a malformed payload. Distinct from a
// well-formed zero-match result, which is not an error.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")
