// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// hearthkeep server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidJSONProvided = "invalid JSON provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgPong is the liveness probe response body.
	MsgPong = "pong"
)
