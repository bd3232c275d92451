package translit

import "errors"

// Sentinel errors for the translit application.
var (
	// ErrListen is returned by Run when the server cannot bind its address.
	ErrListen = errors.New("translit: listen failed")

	// ErrInvalidJSON is reported for request bodies that are not valid JSON.
	ErrInvalidJSON = errors.New("translit: invalid json body")
)
