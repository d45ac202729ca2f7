// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the my-group client application runtime.
//
// It wires the local session store, the HTTP server adapter and the client
// session into one process lifecycle and dispatches either a one-shot
// command or the interactive terminal UI.
package client
