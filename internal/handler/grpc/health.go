// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/service"
)

// ServiceName is the service name answered by Check besides the empty
// overall-server name.
const ServiceName = "my-group"

// healthServer reports SERVING while the database answers its ping. The
// status is checked on every call.
type healthServer struct {
	healthpb.UnimplementedHealthServer

	health service.HealthService
}

func newHealthServer(health service.HealthService) *healthServer {
	return &healthServer{health: health}
}

func (s *healthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}

	if err := s.health.DatabaseStatus(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("database is not reachable")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
