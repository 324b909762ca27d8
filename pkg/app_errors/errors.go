package apperrors

import "errors"

var (
	ErrArtistNotFound     = errors.New("artist not found")
	ErrPackNotFound       = errors.New("pack not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrEventPackNotFound  = errors.New("event pack association not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
)
