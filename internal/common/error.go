// Package common defines shared constants and sentinel errors used across
// the filedrop client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Client-side validation errors. These never reach the network.
	ErrFileTooLarge   = errors.New("file exceeds the maximum upload size")
	ErrEmptyCode      = errors.New("code is empty")
	ErrNoFileSelected = errors.New("no file selected")

	// ErrBusy means another exchange is already in flight.
	ErrBusy = errors.New("another transfer is in progress")

	// ErrInvalidResponse means the server answered 2xx with a body the
	// client could not parse.
	ErrInvalidResponse = errors.New("invalid response from server")
)
