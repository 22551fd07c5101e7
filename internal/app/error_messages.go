// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants used by
// the transport client, the session store and the CLI.
//
// All Msg* constants are human-readable strings that end up in error values,
// log entries or terminal output. Keeping them in one place keeps the wording
// consistent.
package app

const (
	// MsgAPIRequestFailed is the message of a failed JSON request whose
	// response carried no server message.
	MsgAPIRequestFailed = "API request failed"

	// MsgUploadFailed is the message of a failed receipt upload whose
	// response carried no server message.
	MsgUploadFailed = "Upload failed"

	// MsgSessionExpired is logged when an authentication failure clears the
	// session.
	MsgSessionExpired = "session expired or token invalid"

	// MsgNotLoggedIn is shown when a command needs a session and none exists.
	MsgNotLoggedIn = "not logged in"

	// MsgLoggedOut is shown after a completed logout.
	MsgLoggedOut = "logged out"

	// MsgUnrecognizedAuthResponse is logged when a login or register response
	// carries neither a usable token nor a user.
	MsgUnrecognizedAuthResponse = "response carries no token and user, session left unchanged"

	// MsgCopiedToClipboard is shown after a URL has been copied.
	MsgCopiedToClipboard = "copied to clipboard"
)
