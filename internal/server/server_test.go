package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_GracefulShutdown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	started := make(chan struct{})
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusNoContent)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(handler, Options{ShutdownTimeout: 5 * time.Second}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	respCh := make(chan *http.Response, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			respCh <- resp
		}
		close(respCh)
	}()

	<-started
	cancel()

	// запрос в обработке должен завершиться до остановки
	select {
	case <-done:
		t.Fatal("server stopped before the in-flight request finished")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	require.NoError(t, <-done)

	resp, ok := <-respCh
	require.True(t, ok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestServer_RunListenError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// адрес уже занят
	srv := New(http.NotFoundHandler(), Options{Addr: ln.Addr().String()}, logger)
	err = srv.Run(context.Background())
	assert.Error(t, err)
}
