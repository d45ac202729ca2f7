// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{"localhost", "localhost:8080", false, NetAddress{Host: "localhost", Port: 8080}},
		{"ip", "10.0.0.1:9090", false, NetAddress{Host: "10.0.0.1", Port: 9090}},
		{"any interface", ":8080", false, NetAddress{Port: 8080}},
		{"missing port", "localhost", true, NetAddress{}},
		{"non numeric port", "localhost:http", true, NetAddress{}},
		{"zero port", "localhost:0", true, NetAddress{}},
		{"port too large", "localhost:70000", true, NetAddress{}},
		{"hostname", "example.com:80", true, NetAddress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags_AllFields(t *testing.T) {
	cfg, rest, err := parseFlags([]string{
		"-a", "localhost:8080",
		"-g", "localhost:9090",
		"-d", "postgres://localhost/db",
		"-c", "/etc/my-group.json",
		"-token-sign-key", "sign",
		"-token-issuer", "iss",
		"-token-duration", "1h",
		"-request-timeout", "15s",
		"-query-timeout", "2s",
		"-hash-key", "hash",
		"-log-level", "info",
	})
	require.NoError(t, err)
	assert.Empty(t, rest)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/my-group.json", cfg.JSONFilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.QueryTimeout)
	assert.Equal(t, "hash", cfg.App.HashKey)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, _, err := parseFlags([]string{"-a", "nope"})
	assert.Error(t, err)
}
