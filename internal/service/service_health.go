// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/store"
)

const defaultHealthTimeout = 2 * time.Second

type healthService struct {
	checker store.HealthChecker
	timeout time.Duration

	logger *logger.Logger
}

// NewHealthService builds a HealthService pinging through checker. A
// non-positive timeout falls back to two seconds.
func NewHealthService(checker store.HealthChecker, timeout time.Duration, logger *logger.Logger) HealthService {
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}
	return &healthService{checker: checker, timeout: timeout, logger: logger}
}

func (s *healthService) DatabaseStatus(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.checker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.DatabaseStatus").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}
