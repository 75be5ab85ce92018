package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/koji-m/Bluedog/internal/config"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	return addr
}

func TestNewServer_Validation(t *testing.T) {
	_, err := NewServer(nil, config.ClientBridge{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)

	_, err = NewServer(http.NotFoundHandler(), config.ClientBridge{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAddress)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	srv, err := NewServer(handler, config.ClientBridge{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		body = string(b)
		return true
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "pong", body)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunBindError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := NewServer(http.NotFoundHandler(), config.ClientBridge{HTTPAddress: ln.Addr().String(), ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
