package service

import "errors"

var (
	ErrForbidden    = errors.New("not permitted")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
)
