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
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "10.0.0.1:443", want: NetAddress{Host: "10.0.0.1", Port: 443}},
		{name: "any interface", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-d", "file:test.db",
		"-driver", "sqlite3",
		"-config", "/tmp/cfg.json",
		"-ca-key", "/tmp/ca.pem",
		"-ca-issuer", "Flag CA",
		"-pbkdf2-iterations", "1000",
		"-rsa-key-size", "4096",
		"-challenge-ttl", "90s",
		"-request-timeout", "3s",
		"-admin-user", "admin",
		"-admin-password", "secret",
		"-token-sign-key", "sign",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-sweep-interval", "30s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/ca.pem", cfg.Security.CAKeyPath)
	assert.Equal(t, "Flag CA", cfg.Security.CAIssuer)
	assert.Equal(t, 1000, cfg.Security.PBKDF2Iterations)
	assert.Equal(t, 4096, cfg.Security.RSAKeySize)
	assert.Equal(t, 90*time.Second, cfg.Security.ChallengeTTL)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "secret", cfg.Admin.Password)
	assert.Equal(t, "sign", cfg.Admin.TokenSignKey)
	assert.Equal(t, "iss", cfg.Admin.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Admin.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Workers.ChallengeSweepInterval)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"-no-such-flag", "x"})
	assert.Error(t, err)
}

func TestParseClientFlags_ReturnsSubcommand(t *testing.T) {
	cfg, rest, err := parseClientFlags([]string{"-a", "http://srv:8080", "-timeout", "5s", "notes", "list"})
	require.NoError(t, err)

	assert.Equal(t, "http://srv:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"notes", "list"}, rest)
}
