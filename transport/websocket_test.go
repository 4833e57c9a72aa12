package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoServer(t *testing.T) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(mt, msg); err != nil {
				return
			}
		}
	}))
}

func TestWebSocketDialSendReceive(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	dialer := NewWebSocketDialer(false)
	sock, err := dialer.Dial(context.Background(), wsURL)
	require.NoError(t, err)
	defer sock.Close()

	require.NoError(t, sock.Send(context.Background(), []byte("hello")))
	reply, err := sock.Receive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(reply))
}

func TestWebSocketCloseIdempotent(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	dialer := NewWebSocketDialer(false)
	sock, err := dialer.Dial(context.Background(), wsURL)
	require.NoError(t, err)

	require.NoError(t, sock.Close())
	require.NoError(t, sock.Close())
}

func TestWebSocketSendAfterCloseFails(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	dialer := NewWebSocketDialer(false)
	sock, err := dialer.Dial(context.Background(), wsURL)
	require.NoError(t, err)
	require.NoError(t, sock.Close())

	err = sock.Send(context.Background(), []byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
}
