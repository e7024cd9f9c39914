package ipc

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stopwatch/internal/core/command"
	"stopwatch/internal/core/stopwatch"

	"golang.org/x/net/http2"
)

// Client talks to the command endpoint of a running instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the instance listening on address.
func NewClient(address string) *Client {
	transport := &http2.Transport{
		AllowHTTP: true,
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			var dialer net.Dialer
			return dialer.DialContext(ctx, network, addr)
		},
	}

	return &Client{
		baseURL: "http://" + address,
		http: &http.Client{
			Transport: transport,
			Timeout:   5 * time.Second,
		},
	}
}

// Send delivers request and returns the resulting snapshot.
func (client *Client) Send(ctx context.Context, request command.Request) (stopwatch.Snapshot, error) {
	form := url.Values{}
	if request.State != "" {
		form.Set(FieldState, request.State)
	}
	if request.Action != "" {
		form.Set(FieldAction, request.Action)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+"/command", strings.NewReader(form.Encode()))
	if err != nil {
		return stopwatch.Snapshot{}, fmt.Errorf("build command request: %w", err)
	}
	httpRequest.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return client.do(httpRequest)
}

// State reads the current snapshot.
func (client *Client) State(ctx context.Context) (stopwatch.Snapshot, error) {
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+"/state", nil)
	if err != nil {
		return stopwatch.Snapshot{}, fmt.Errorf("build state request: %w", err)
	}
	return client.do(httpRequest)
}

func (client *Client) do(httpRequest *http.Request) (stopwatch.Snapshot, error) {
	response, err := client.http.Do(httpRequest)
	if err != nil {
		return stopwatch.Snapshot{}, fmt.Errorf("contact running instance: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		message, _ := io.ReadAll(io.LimitReader(response.Body, 1024))
		return stopwatch.Snapshot{}, fmt.Errorf("running instance replied %s: %s", response.Status, strings.TrimSpace(string(message)))
	}

	var snapshot stopwatch.Snapshot
	if err := json.NewDecoder(response.Body).Decode(&snapshot); err != nil {
		return stopwatch.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}
