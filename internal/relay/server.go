// Package relay implements the TCP message relay: clients either register a
// subscriber port or send an expression, which is evaluated, recorded and
// broadcast to every subscriber.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/expr"
	"github.com/DjordjeVuckovic/exprtree/internal/history"
	"golang.org/x/sync/errgroup"
)

// registrationPrefix marks a payload of the form "0<port>".
const registrationPrefix = '0'

const maxConcurrentDials = 16

type Server struct {
	cfg      Config
	engine   expr.Engine
	recorder *history.Recorder
	registry *Registry
}

func NewServer(cfg Config, recorder *history.Recorder) (*Server, error) {
	cfg = cfg.withDefaults()

	engine, err := expr.New(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	if recorder == nil {
		recorder = history.NewRecorder(nil)
	}

	return &Server{
		cfg:      cfg,
		engine:   engine,
		recorder: recorder,
		registry: NewRegistry(),
	}, nil
}

func (s *Server) Registry() *Registry {
	return s.registry
}

// ListenAndServe listens on the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then closes ln and waits
// for in-flight connections to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	slog.Info("Relay listening", "addr", ln.Addr().String(), "dialect", s.cfg.Dialect)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		_ = ln.Close()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				slog.Info("Relay stopped", "addr", ln.Addr().String())
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConn(ctx, conn)
		}()
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	payload, err := ReadFrame(conn)
	if err != nil {
		slog.Warn("failed to read relay frame", "remote", conn.RemoteAddr().String(), "error", err)
		return
	}

	s.Handle(ctx, payload)
}

// Handle processes one inbound payload.
func (s *Server) Handle(ctx context.Context, payload string) {
	if payload == "" {
		slog.Warn("ignoring empty relay payload")
		return
	}

	if port, ok := parseRegistration(payload); ok {
		addr := net.JoinHostPort(s.cfg.SubscriberHost, strconv.Itoa(port))
		if s.registry.Add(addr) {
			slog.Info("Subscriber registered", "addr", addr, "subscribers", s.registry.Len())
		}
		return
	}

	e, _, err := s.recorder.Evaluate(ctx, s.engine, domain.SourceRelay, payload)
	if err != nil {
		slog.Debug("relay expression failed", "expression", payload, "error", err)
	}

	message := FormatMessage(e)
	delivered, err := s.Broadcast(ctx, message)
	slog.Info("Relayed message", "message", message, "delivered", delivered, "subscribers", s.registry.Len())
	if err != nil {
		slog.Warn("broadcast incomplete", "error", err)
	}
}

// Broadcast sends message to every subscriber concurrently and returns how many
// received it. Unreachable subscribers stay registered.
func (s *Server) Broadcast(ctx context.Context, message string) (int, error) {
	subs := s.registry.Snapshot()
	errs := make([]error, len(subs))

	var g errgroup.Group
	g.SetLimit(maxConcurrentDials)
	for i, addr := range subs {
		g.Go(func() error {
			if err := s.send(ctx, addr, message); err != nil {
				errs[i] = fmt.Errorf("subscriber %s: %w", addr, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	delivered := 0
	for _, err := range errs {
		if err == nil {
			delivered++
		}
	}
	return delivered, errors.Join(errs...)
}

func (s *Server) send(ctx context.Context, addr, message string) error {
	d := net.Dialer{Timeout: s.cfg.DialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.DialTimeout))
	return WriteFrame(conn, message)
}

// FormatMessage renders the line broadcast for an evaluation.
func FormatMessage(e domain.Evaluation) string {
	if e.Failed() {
		return fmt.Sprintf("%s = error: %s", e.Expression, e.Error)
	}
	return fmt.Sprintf("%s = %s", e.Expression, e.Result)
}

// parseRegistration accepts "0" followed only by digits naming a valid port.
func parseRegistration(payload string) (int, bool) {
	if len(payload) < 2 || payload[0] != registrationPrefix {
		return 0, false
	}
	for _, c := range payload[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	port, err := strconv.Atoi(payload[1:])
	if err != nil || port < 1 || port > 65535 {
		return 0, false
	}
	return port, true
}
