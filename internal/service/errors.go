package service

import "errors"

var (
	ErrValidationUnknownDomain   = errors.New("unknown domain")
	ErrValidationActorRequired   = errors.New("actor id is required for actor-scoped domain")
	ErrValidationActorNotAllowed = errors.New("actor id is not allowed for shared domain")
	ErrValidationNoRecords       = errors.New("no records provided")
)
