// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the command-line front end of the client.
//
// Every command is a thin shell over the session store and the domain
// services: it parses its own flags, calls one operation and renders the
// result with lipgloss. Session-bound commands initialize the session first
// and refuse to run when nobody is signed in.
package cli
