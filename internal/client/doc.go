// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires local storage, the transport adapter, the session store, the
// domain services and the session watcher into a single process lifecycle
// and hands command lines to package cli.
package client
