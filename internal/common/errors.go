package common

import "errors"

// Callers should use errors.Is to match these values.
var (
	// ErrPathNotFound signals that a required input file or directory is
	// missing. Runs abort before any processing when this is returned.
	ErrPathNotFound = errors.New("path not found")

	// ErrMalformedPack signals a sticker pack file that could not be
	// parsed as JSON.
	ErrMalformedPack = errors.New("malformed pack file")

	// ErrNoToken signals that an access token was required but not
	// provided by argument, environment, or prompt.
	ErrNoToken = errors.New("no access token")
)
