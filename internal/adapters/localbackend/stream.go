package localbackend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/xray-forge/xrf-shell/internal/adapters/blob"
	"github.com/xray-forge/xrf-shell/internal/logging"
)

// StreamResolver maps a stream name to the file serving it
type StreamResolver interface {
	Stream(name string) (string, bool)
}

// StreamHandler serves registered files under /stream/<name>
func StreamHandler(resolver StreamResolver) http.Handler {
	prefix := "/" + blob.StreamProtocol + "/"
	mux := http.NewServeMux()
	mux.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, prefix)
		path, ok := resolver.Stream(name)
		if !ok {
			logging.Logger.Debug("Unknown stream requested", "name", name)
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	})
	return mux
}

// StreamServer serves streams on a local listener
type StreamServer struct {
	listener net.Listener
	server   *http.Server
}

// ListenStreams binds addr, which may use port 0, and starts serving.
// The server stops when ctx is cancelled or Close is called.
func ListenStreams(ctx context.Context, addr string, resolver StreamResolver) (*StreamServer, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen for streams: %w", err)
	}

	s := &StreamServer{
		listener: listener,
		server: &http.Server{
			Handler:           StreamHandler(resolver),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Error("Stream server stopped", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		_ = s.Close()
	}()

	logging.Logger.Info("Stream server listening", "addr", listener.Addr().String())
	return s, nil
}

// BaseURL returns the URL blob fetchers resolve stream names against
func (s *StreamServer) BaseURL() string {
	return "http://" + s.listener.Addr().String()
}

// Close stops the server
func (s *StreamServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
