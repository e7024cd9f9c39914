// Package ipc exposes a running stopwatch to other processes over HTTP/2
// cleartext on the single-instance port, and provides the matching client.
package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"stopwatch/internal/core/command"
	"stopwatch/internal/core/stopwatch"
	"stopwatch/internal/service"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Form fields accepted by POST /command.
const (
	FieldState  = "state"
	FieldAction = "action"
)

// Handler is the part of the stopwatch service the endpoint drives.
type Handler interface {
	Handle(ctx context.Context, request command.Request) (stopwatch.Snapshot, error)
	Snapshot(ctx context.Context) (stopwatch.Snapshot, error)
}

// Server serves the command endpoint.
type Server struct {
	handler Handler
	http    *http.Server
}

// NewServer creates a server for handler.
func NewServer(handler Handler) *Server {
	server := &Server{handler: handler}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /command", server.handleCommand)
	mux.HandleFunc("GET /state", server.handleState)

	server.http = &http.Server{
		Handler:           h2c.NewHandler(mux, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server
}

// Serve accepts connections on listener until Shutdown.
func (server *Server) Serve(listener net.Listener) error {
	err := server.http.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and waits for active requests.
func (server *Server) Shutdown(ctx context.Context) error {
	return server.http.Shutdown(ctx)
}

func (server *Server) handleCommand(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		http.Error(writer, "invalid form", http.StatusBadRequest)
		return
	}
	snapshot, err := server.handler.Handle(request.Context(), command.Request{
		State:  request.PostForm.Get(FieldState),
		Action: request.PostForm.Get(FieldAction),
	})
	server.reply(writer, snapshot, err)
}

func (server *Server) handleState(writer http.ResponseWriter, request *http.Request) {
	snapshot, err := server.handler.Snapshot(request.Context())
	server.reply(writer, snapshot, err)
}

func (server *Server) reply(writer http.ResponseWriter, snapshot stopwatch.Snapshot, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrStopped) {
			status = http.StatusServiceUnavailable
		}
		http.Error(writer, err.Error(), status)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(writer).Encode(snapshot); err != nil {
		log.Printf("[ipc] write response: %v", err)
	}
}
