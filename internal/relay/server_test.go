package relay

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/history"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/DjordjeVuckovic/exprtree/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistration(t *testing.T) {
	tests := []struct {
		payload string
		port    int
		ok      bool
	}{
		{payload: "06001", port: 6001, ok: true},
		{payload: "065535", port: 65535, ok: true},
		{payload: "0", ok: false},
		{payload: "00", ok: false},
		{payload: "065536", ok: false},
		{payload: "0+1", ok: false},
		{payload: "0 * 5", ok: false},
		{payload: "16001", ok: false},
		{payload: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			port, ok := parseRegistration(tt.payload)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.port, port)
		})
	}
}

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "1 + 1 = 2", FormatMessage(domain.Evaluation{Expression: "1 + 1", Result: "2"}))
	assert.Equal(t, "1 + = error: boom", FormatMessage(domain.Evaluation{Expression: "1 +", Error: "boom"}))
}

func TestNewServer_InvalidDialect(t *testing.T) {
	_, err := NewServer(Config{Dialect: "ternary"}, nil)
	assert.Error(t, err)
}

// subscriber listens on a loopback port and forwards every received frame.
func subscriber(t *testing.T) (int, <-chan string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	out := make(chan string, 8)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			msg, err := ReadFrame(conn)
			_ = conn.Close()
			if err == nil {
				out <- msg
			}
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port, out
}

func startServer(t *testing.T, cfg Config, store *in_mem.InMemStorer) (*Server, string) {
	t.Helper()

	srv, err := NewServer(cfg, history.NewRecorder(store))
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("relay did not stop")
		}
	})

	return srv, ln.Addr().String()
}

func send(t *testing.T, addr, payload string) {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, WriteFrame(conn, payload))
}

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()

	select {
	case msg := <-ch:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("no message received")
		return ""
	}
}

func TestServer_RegisterAndBroadcast(t *testing.T) {
	store := in_mem.NewInMemStorer()
	srv, addr := startServer(t, Config{}, store)

	portA, msgsA := subscriber(t)
	portB, msgsB := subscriber(t)

	send(t, addr, "0"+strconv.Itoa(portA))
	send(t, addr, "0"+strconv.Itoa(portB))
	require.Eventually(t, func() bool { return srv.Registry().Len() == 2 }, 5*time.Second, 10*time.Millisecond)

	send(t, addr, "(2+3)*4")
	assert.Equal(t, "(2+3)*4 = 20", receive(t, msgsA))
	assert.Equal(t, "(2+3)*4 = 20", receive(t, msgsB))

	send(t, addr, "1 +")
	msg := receive(t, msgsA)
	assert.Contains(t, msg, "1 + = error: stack underflow")
	_ = receive(t, msgsB)

	res, err := store.List(context.Background(), pagination.OffsetRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Total)
	assert.Equal(t, domain.SourceRelay, res.Items[0].Source)
	assert.True(t, res.Items[0].Failed())
	assert.Equal(t, "20", res.Items[1].Result)
}

func TestServer_BooleanDialect(t *testing.T) {
	srv, addr := startServer(t, Config{Dialect: operator.Boolean}, in_mem.NewInMemStorer())
	port, msgs := subscriber(t)

	send(t, addr, "0"+strconv.Itoa(port))
	require.Eventually(t, func() bool { return srv.Registry().Len() == 1 }, 5*time.Second, 10*time.Millisecond)

	send(t, addr, "true ^ true")
	assert.Equal(t, "true ^ true = false", receive(t, msgs))
}

func TestServer_BroadcastUnreachable(t *testing.T) {
	srv, err := NewServer(Config{DialTimeout: 200 * time.Millisecond}, nil)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	srv.Handle(context.Background(), "0"+strconv.Itoa(port))
	require.Equal(t, 1, srv.Registry().Len())

	delivered, err := srv.Broadcast(context.Background(), "1 = 1")
	assert.Equal(t, 0, delivered)
	assert.Error(t, err)
	assert.Equal(t, 1, srv.Registry().Len())
}
