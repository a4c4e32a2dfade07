package service

import "errors"

var (
	ErrEmptyToken   = errors.New("authentication returned an empty token")
	ErrPersistToken = errors.New("failed to persist token")
	ErrProbeFailed  = errors.New("authenticated session was rejected by probe call")

	ErrAdminLogin   = errors.New("admin login failed")
	ErrUserNotFound = errors.New("user not found")
)
