package udp

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDialAndSendRecv(t *testing.T) {
	serverAddr := &net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: Port}
	server, err := net.ListenUDP("udp", serverAddr)
	require.NoError(t, err)
	defer server.Close()

	conn, err := Dial(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Send([]byte("hello")))

	buf := make([]byte, MinRecvBufferSize)
	n, peer, err := server.ReadFromUDP(buf)
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf[:n]))

	_, err = server.WriteToUDP([]byte("world"), peer)
	require.NoError(t, err)

	n, err = conn.Recv(buf)
	require.NoError(t, err)
	require.Equal(t, "world", string(buf[:n]))
}

func TestDialInvalidHost(t *testing.T) {
	_, err := Dial(context.Background(), "::invalid::host::")
	require.Error(t, err)
}

func TestConnAddrs(t *testing.T) {
	serverAddr := &net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: Port}
	server, err := net.ListenUDP("udp", serverAddr)
	require.NoError(t, err)
	defer server.Close()

	conn, err := Dial(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	defer conn.Close()

	require.NotNil(t, conn.LocalAddr())
	require.Equal(t, serverAddr.String(), conn.RemoteAddr().String())
}
