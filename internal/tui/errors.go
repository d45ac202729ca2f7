// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/my-group/internal/service"

func describeLoginError(err error) string {
	if err == nil {
		return ""
	}
	return service.DescribeLoginError(err)
}

func describeError(err error) string {
	if err == nil {
		return ""
	}
	return service.DescribeError(err)
}
