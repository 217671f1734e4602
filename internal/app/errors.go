package app

import "errors"

// Run returns one of these to tell main how the app stopped.
var (
	ErrAppStartup           = errors.New("app startup error")
	ErrAppShutdownNormal    = errors.New("app shutdown normal")
	ErrAppShutdownWithError = errors.New("app shutdown with error")
)
