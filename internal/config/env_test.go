// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_DATA_DIR":  "/var/lib/bluedog",
		"APP_LOG_FILE":  "/var/log/bluedog.log",
		"APP_LOG_LEVEL": "info",

		"ADAPTER_SERVICE_URL":     "https://pds.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_RATE_LIMIT":      "2.5",
		"ADAPTER_RATE_BURST":      "3",

		"FEED_TIMELINE_LIMIT": "20",
		"FEED_SEARCH_LIMIT":   "15",
		"FEED_AUTHOR_LIMIT":   "10",

		"BRIDGE_ADDRESS":          "localhost:9999",
		"BRIDGE_DISABLE_METRICS":  "true",
		"BRIDGE_SHUTDOWN_TIMEOUT": "1m",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)

	assert.Equal(t, "/var/lib/bluedog", cfg.App.DataDir)
	assert.Equal(t, "/var/log/bluedog.log", cfg.App.LogFile)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "https://pds.example.com", cfg.Adapter.ServiceURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RateLimit, 0.0001)
	assert.Equal(t, 3, cfg.Adapter.RateBurst)

	assert.Equal(t, 20, cfg.Feed.TimelineLimit)
	assert.Equal(t, 15, cfg.Feed.SearchLimit)
	assert.Equal(t, 10, cfg.Feed.AuthorLimit)

	assert.Equal(t, "localhost:9999", cfg.Bridge.HTTPAddress)
	assert.True(t, cfg.Bridge.DisableMetrics)
	assert.Equal(t, time.Minute, cfg.Bridge.ShutdownTimeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, Feed{}, cfg.Feed)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "duration", key: "ADAPTER_REQUEST_TIMEOUT", val: "invalid"},
		{name: "int", key: "FEED_TIMELINE_LIMIT", val: "thirty"},
		{name: "float", key: "ADAPTER_RATE_LIMIT", val: "fast"},
		{name: "bool", key: "BRIDGE_DISABLE_METRICS", val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			assert.Error(t, parseEnv(&StructuredConfig{}))
		})
	}
}
