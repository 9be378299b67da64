package domain

import "errors"

// Sentinel errors for the client. These map onto the four failure categories
// the views care about, and are checked with errors.Is.
var (
	// ErrTransport indicates the remote API could not be reached or the
	// response body could not be read.
	ErrTransport = errors.New("pet api unreachable")

	// ErrRejected indicates the API answered with a non-success status or body.
	ErrRejected = errors.New("pet api rejected the request")

	// ErrMalformedResponse indicates a success-shaped response that is missing
	// a required field (e.g. the user id on login).
	ErrMalformedResponse = errors.New("unexpected response from the pet api")

	// ErrNoToken indicates no bearer token is held in the session.
	ErrNoToken = errors.New("no access token in session")

	// ErrNoIdentity indicates no user identifier is held in the session.
	ErrNoIdentity = errors.New("no user identity in session")
)
