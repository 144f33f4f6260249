package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")

	ErrMissingToken        = errors.New("missing token")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
