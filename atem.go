// Package atem is a client for the Blackmagic ATEM-family UDP
// control/event protocol. Once Open succeeds, the switcher streams
// state-change events which Poll delivers as typed Commands; the package
// does not interpret their meaning or keep an aggregated switcher model.
package atem

import (
	"context"
	"errors"

	"github.com/rcarmo/atem-go/internal/command"
	"github.com/rcarmo/atem-go/internal/logging"
	"github.com/rcarmo/atem-go/internal/protocol/wire"
	"github.com/rcarmo/atem-go/internal/session"
	"github.com/rcarmo/atem-go/internal/transport/udp"
)

// Message is the closed set of events Poll can return.
type Message = session.Message

// Connected is emitted once, right after the initial HELLO is sent.
type Connected = session.Connected

// Command carries one successfully decoded command record. Value holds a
// concrete type from the internal/command catalog (command.Version,
// command.TallyInputs, and so on).
type Command = session.CommandMessage

// ParsingFailed reports a non-fatal decode error; the session continues.
// Use IsKind(msg.Err, ...) to classify it.
type ParsingFailed = session.ParsingFailed

// Disconnected is terminal: no further messages follow it.
type Disconnected = session.Disconnected

// Option configures a Handle at Open time.
type Option func(*config)

type config struct {
	logger     logging.Sink
	bufferSize int
}

// WithLogger injects a logging sink the core writes through. The default
// is logging.Discard().
func WithLogger(sink logging.Sink) Option {
	return func(c *config) { c.logger = sink }
}

// WithRecvBufferSize overrides the datagram receive buffer size (default
// 1500 bytes, per the protocol's stated minimum).
func WithRecvBufferSize(n int) Option {
	return func(c *config) { c.bufferSize = n }
}

// Handle is a connected session. It is logically single-consumer: only
// one goroutine should call Poll at a time.
type Handle struct {
	engine *session.Engine
}

// Open binds an ephemeral local endpoint, connects to address on the
// protocol's fixed port, sends the initial HELLO, and returns a Handle
// once the handshake packet has been written. The connection's engine
// goroutine is already running when Open returns.
func Open(ctx context.Context, address string, opts ...Option) (*Handle, error) {
	cfg := config{
		logger:     logging.Discard(),
		bufferSize: 1500,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn, err := udp.Dial(ctx, address)
	if err != nil {
		return nil, wrapErr(classifyDialErr(err), err)
	}

	engine := session.NewEngine(conn, cfg.logger, session.WithRecvBufferSize(cfg.bufferSize))
	if err := engine.Start(); err != nil {
		_ = conn.Close()
		return nil, wrapErr(KindSocketError, err)
	}

	return &Handle{engine: engine}, nil
}

// Poll waits for the next Message, or returns (nil, false) once the engine
// has stopped and every queued message has been delivered. It also
// returns (nil, false) if ctx is canceled first.
func (h *Handle) Poll(ctx context.Context) (Message, bool) {
	select {
	case msg, ok := <-h.engine.Messages():
		if !ok {
			return nil, false
		}
		return classify(msg), true
	case <-ctx.Done():
		return nil, false
	}
}

// Close cancels the engine and releases the socket.
func (h *Handle) Close() error {
	return h.engine.Close()
}

// classify rewrites a ParsingFailed's error into an *Error carrying the
// right ErrorKind, so callers can use IsKind without reaching into
// internal packages.
func classify(msg Message) Message {
	pf, ok := msg.(ParsingFailed)
	if !ok {
		return msg
	}
	return ParsingFailed{Err: wrapErr(classifyParsingErr(pf.Err), pf.Err)}
}

func classifyParsingErr(err error) ErrorKind {
	var unknown *command.UnknownCommandError
	switch {
	case errors.As(err, &unknown):
		return KindUnknownCommand
	case errors.Is(err, command.ErrUTF8):
		return KindUTF8
	case errors.Is(err, command.ErrTruncated), errors.Is(err, wire.ErrTruncated):
		return KindTruncatedPacket
	default:
		return KindTruncatedPacket
	}
}

func classifyDialErr(err error) ErrorKind {
	if errors.Is(err, udp.ErrAddress) {
		return KindAddressParse
	}
	return KindSocketError
}
