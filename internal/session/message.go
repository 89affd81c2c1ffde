package session

import "github.com/rcarmo/atem-go/internal/command"

// Message is the closed set of events the engine delivers to its consumer.
type Message interface {
	isMessage()
}

// Connected is emitted once, immediately after the initial HELLO is sent.
type Connected struct{}

func (Connected) isMessage() {}

// CommandMessage carries one successfully decoded command record.
type CommandMessage struct {
	Value command.Command
}

func (CommandMessage) isMessage() {}

// ParsingFailed reports a non-fatal decode error: a truncated record, an
// unrecognized tag, or invalid UTF-8 in a text field. The session
// continues.
type ParsingFailed struct {
	Err error
}

func (ParsingFailed) isMessage() {}

// Disconnected is the terminal message: the engine has stopped and will
// deliver nothing further.
type Disconnected struct {
	Err error
}

func (Disconnected) isMessage() {}
