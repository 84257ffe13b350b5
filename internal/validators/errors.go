package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidWorkerName = errors.New("invalid worker name")
	ErrInvalidRepoURL    = errors.New("invalid github repository url")
	ErrTokenTooShort     = errors.New("api token is too short")
	ErrEmptyAccountID    = errors.New("account id is required")
	ErrEmptyScript       = errors.New("script content is required")
)
