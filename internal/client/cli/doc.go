// Package cli implements the interactive terminal front end of the filedrop
// client: a read–eval–print loop whose commands drive the session state
// transitions and the HTTP transfer adapter. All rendering lives here; the
// session and api packages stay free of terminal concerns.
package cli
