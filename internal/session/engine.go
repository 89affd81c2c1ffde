// Package session implements the reliable-over-UDP session transport: the
// handshake/ack state machine, packet-id sequencing, and the pipeline from
// raw datagrams down to decoded Commands delivered over an unbounded,
// single-consumer message queue.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/rcarmo/atem-go/internal/command"
	"github.com/rcarmo/atem-go/internal/logging"
	"github.com/rcarmo/atem-go/internal/protocol/wire"
)

// Socket is the datagram transport the engine drives. transport/udp.Conn
// satisfies it; tests substitute an in-memory fake.
type Socket interface {
	Send(b []byte) error
	Recv(buf []byte) (int, error)
	SetReadDeadline(t time.Time) error
	Close() error
}

// clientUID is the session identifier the client asserts on its initial
// HELLO (spec-fixed, not negotiated).
const clientUID = 0x1337

// pollInterval bounds how long a blocked Recv can delay reacting to Close;
// mirrors the teacher's receive-loop deadline-poll idiom.
const pollInterval = 100 * time.Millisecond

type state int

const (
	stateInit state = iota
	stateOpen
	stateClosed
)

// Engine owns the socket and all session state for one connection's
// lifetime. Exactly one goroutine (run) touches the socket and the state
// machine; Close is the only method safe to call from another goroutine.
type Engine struct {
	sock   Socket
	log    logging.Sink
	bufLen int

	mailbox *mailbox

	mu           sync.Mutex
	state        state
	nextClientID uint16

	closeOnce sync.Once
	stopped   chan struct{}
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithRecvBufferSize overrides the receive buffer size (default 1500,
// per spec.md §4.1's stated minimum).
func WithRecvBufferSize(n int) Option {
	return func(e *Engine) { e.bufLen = n }
}

// NewEngine constructs an Engine over sock. logger is never nil; pass
// logging.Discard() to silence it.
func NewEngine(sock Socket, logger logging.Sink, opts ...Option) *Engine {
	e := &Engine{
		sock:    sock,
		log:     logger,
		bufLen:  1500,
		mailbox: newMailbox(),
		state:   stateInit,
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start sends the initial HELLO, emits Connected, and spawns the receive
// loop. It must be called exactly once.
func (e *Engine) Start() error {
	hello := wire.NewHello()
	hello.UID = clientUID

	if err := e.sock.Send(hello.Serialize()); err != nil {
		return fmt.Errorf("session: send hello: %w", err)
	}

	e.mu.Lock()
	e.state = stateOpen
	e.mu.Unlock()

	e.mailbox.push(Connected{})
	e.log.Infof("session: hello sent, uid=0x%04x", clientUID)

	go e.run()
	return nil
}

// Messages returns the channel the consumer polls. It closes once the
// engine has stopped and every queued message has been delivered.
func (e *Engine) Messages() <-chan Message { return e.mailbox.messages() }

// Close stops the engine and releases the socket. Safe to call more than
// once and concurrently with the engine's own goroutine.
func (e *Engine) Close() error {
	var err error
	e.closeOnce.Do(func() {
		close(e.stopped)
		err = e.sock.Close()
	})
	return err
}

func (e *Engine) run() {
	buf := make([]byte, e.bufLen)

	for {
		select {
		case <-e.stopped:
			e.mailbox.stop()
			return
		default:
		}

		_ = e.sock.SetReadDeadline(time.Now().Add(pollInterval))
		n, err := e.sock.Recv(buf)
		if err != nil {
			select {
			case <-e.stopped:
				// Close() tore down the socket; this is cancellation, not a
				// transport failure, so no Disconnected is emitted and
				// whatever is still queued is dropped.
				e.mailbox.stop()
				return
			default:
			}

			if isTimeout(err) {
				continue
			}
			e.mailbox.push(Disconnected{Err: err})
			e.mailbox.closeProducer()
			e.mu.Lock()
			e.state = stateClosed
			e.mu.Unlock()
			return
		}

		e.handleDatagram(buf[:n])
	}
}

func (e *Engine) handleDatagram(data []byte) {
	r := wire.NewReader(data)
	for r.Next() {
		e.handlePacket(r.Packet())
	}
	if err := r.Err(); err != nil {
		e.mailbox.push(ParsingFailed{Err: err})
	}
}

func (e *Engine) handlePacket(p wire.Packet) {
	switch {
	case p.Flags.Has(wire.FlagHello):
		e.ack(p, 0)
		return

	case p.Flags.Has(wire.FlagACKRequest):
		e.mu.Lock()
		e.nextClientID++
		id := e.nextClientID
		e.mu.Unlock()
		e.ack(p, id)
		e.decodePayload(p.Payload)

	default:
		e.decodePayload(p.Payload)
	}
}

// ack writes the outbound acknowledgement before any of the packet's
// commands are published, per the ordering guarantee.
func (e *Engine) ack(p wire.Packet, id uint16) {
	reply := wire.Packet{
		Flags: wire.FlagACK,
		UID:   p.UID,
		AckID: p.ID,
		ID:    id,
	}
	if err := e.sock.Send(reply.Serialize()); err != nil {
		e.log.Warnf("session: ack send failed: %v", err)
	}
}

func (e *Engine) decodePayload(payload []byte) {
	pr := wire.NewPayloadReader(payload)
	for pr.Next() {
		rec := pr.Record()
		cmd, err := command.Decode(rec.Tag, rec.Body)
		if err != nil {
			e.log.Debugf("session: %v", err)
			e.mailbox.push(ParsingFailed{Err: err})
			continue
		}
		e.mailbox.push(CommandMessage{Value: cmd})
	}
	if err := pr.Err(); err != nil {
		e.mailbox.push(ParsingFailed{Err: err})
	}
}

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	te, ok := err.(timeouter)
	return ok && te.Timeout()
}
