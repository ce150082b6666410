package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/todo/pkg/app"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Service      *app.Service
	RemovalDelay time.Duration
	Name         string
	Version      string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires a service")
	}
	name := r.Name
	if name == "" {
		name = "todo"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := r.newServer(name, version)
	if ctx != nil {
		r.followStore(ctx)
	}

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

func (r Runner) newServer(name, version string) *server.MCPServer {
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and change the to-do list: add, edit, complete and delete tasks."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	delay := r.RemovalDelay
	if delay <= 0 {
		delay = defaultRemovalDelay
	}
	h := &handlers{svc: r.Service, delay: delay}
	registerResources(srv, h)
	registerTools(srv, h)
	return srv
}

// followStore reloads the service when another process rewrites the
// snapshot, so tool calls never act on a stale list.
func (r Runner) followStore(ctx context.Context) {
	ch, err := r.Service.Watch(ctx)
	if err != nil {
		r.Service.Log.Warn("mcp: store watch unavailable", "err", err)
		return
	}
	go func() {
		for range ch {
			if _, err := r.Service.Load(ctx); err != nil {
				r.Service.Log.Error("mcp: reload failed", "err", err)
			}
		}
	}()
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	handler := server.NewStreamableHTTPServer(srv)

	path := r.HTTPEndpointPath
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	httpSrv := &http.Server{
		Handler: mux,
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(shutdownCtx)
		}()
	}

	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
