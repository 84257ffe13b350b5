package service

import "errors"

var (
	ErrNotAuthenticated   = errors.New("user has no stored credential")
	ErrWorkerExists       = errors.New("worker already exists")
	ErrWorkerLimitReached = errors.New("worker limit reached")
	ErrNoBuiltinScript    = errors.New("built-in script is empty")
	ErrFetchingScript     = errors.New("failed to fetch script")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
