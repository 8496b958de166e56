package services

import "errors"

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrOwnChannel  = errors.New("cannot subscribe to your own channel")
	ErrValidation  = errors.New("validation failed")
)
