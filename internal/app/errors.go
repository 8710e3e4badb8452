package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotSignedIn     = errors.New("not signed in; run 'internquest login'")
	ErrProfileMissing  = errors.New("profile not set up; run 'internquest profile init'")
)
