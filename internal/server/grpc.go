// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/my-group/internal/config"
	myGRPC "github.com/MKhiriev/my-group/internal/handler/grpc"
)

type grpcServer struct {
	address string
	server  *grpc.Server
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
	}
}

func (g *grpcServer) Name() string {
	return "gRPC"
}

func (g *grpcServer) Serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	return g.server.Serve(listener)
}

// Shutdown waits for in-flight calls and forces the stop when ctx expires.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
