// Package udp provides the datagram I/O this client sits on: an ephemeral
// UDP socket bound locally and connected to a single switcher peer on port
// 9910. It carries no framing, sequencing, or retransmission of its own —
// that lives in the session engine above it.
package udp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// Port is the fixed UDP port the switcher listens on.
const Port = 9910

// MinRecvBufferSize is the smallest receive buffer callers should supply to
// Conn.Recv; a datagram larger than the buffer is silently truncated by the
// OS, which this package cannot detect after the fact.
const MinRecvBufferSize = 1500

// ErrClosed is returned by Conn methods once Close has been called.
var ErrClosed = errors.New("udp: connection closed")

// ErrAddress indicates the caller-supplied host could not be resolved.
var ErrAddress = errors.New("udp: address resolution failed")

// Conn is a bound, connected UDP socket to one switcher.
type Conn struct {
	sock *net.UDPConn
}

// Dial resolves host, binds an ephemeral local endpoint (0.0.0.0:0), and
// connects to host on Port. ctx governs address resolution only; the
// resulting socket itself is not deadline-bound.
func Dial(ctx context.Context, host string) (*Conn, error) {
	remoteAddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", host, Port))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrAddress, host, err)
	}

	sock, err := net.DialUDP("udp", nil, remoteAddr)
	if err != nil {
		return nil, fmt.Errorf("udp: dial %s: %w", remoteAddr, err)
	}

	return &Conn{sock: sock}, nil
}

// Send writes b as a single datagram to the connected peer.
func (c *Conn) Send(b []byte) error {
	_, err := c.sock.Write(b)
	return err
}

// Recv reads one datagram into buf, returning the number of bytes read.
// buf should be at least MinRecvBufferSize bytes.
func (c *Conn) Recv(buf []byte) (int, error) {
	return c.sock.Read(buf)
}

// SetReadDeadline bounds how long the next Recv may block, so the session
// engine can periodically re-check for cancellation.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.sock.SetReadDeadline(t)
}

// LocalAddr returns the ephemeral local address the socket bound to.
func (c *Conn) LocalAddr() net.Addr { return c.sock.LocalAddr() }

// RemoteAddr returns the switcher's address.
func (c *Conn) RemoteAddr() net.Addr { return c.sock.RemoteAddr() }

// Close releases the socket. Safe to call more than once.
func (c *Conn) Close() error { return c.sock.Close() }
