// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, and graceful shutdown of all enabled transports.
package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts every enabled transport and blocks until a
	// termination signal arrives or a transport fails, then shuts down.
	RunServer()

	// Shutdown gracefully stops all transports. It is safe to call more
	// than once.
	Shutdown()
}

// transport is a single listener managed by the server.
type transport interface {
	Name() string
	// Serve blocks until the transport stops. A graceful stop returns nil.
	Serve() error
	Shutdown(ctx context.Context) error
}
