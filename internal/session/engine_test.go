package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rcarmo/atem-go/internal/command"
	"github.com/rcarmo/atem-go/internal/logging"
	"github.com/rcarmo/atem-go/internal/protocol/wire"
)

func recvMessage(t *testing.T, e *Engine) Message {
	t.Helper()
	select {
	case m, ok := <-e.Messages():
		require.True(t, ok, "message channel closed unexpectedly")
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestEngineStartEmitsConnectedAndSendsHello(t *testing.T) {
	sock := newFakeSocket()
	e := NewEngine(sock, logging.Discard())
	require.NoError(t, e.Start())
	defer e.Close()

	require.IsType(t, Connected{}, recvMessage(t, e))

	sent := sock.sent()
	p, n, err := wire.Deserialize(sent)
	require.NoError(t, err)
	require.Equal(t, len(sent), n)
	require.True(t, p.Flags.Has(wire.FlagHello))
	require.Equal(t, uint16(0x1337), p.UID)
}

func TestEngineHelloHandshakeAck(t *testing.T) {
	sock := newFakeSocket()
	e := NewEngine(sock, logging.Discard())
	require.NoError(t, e.Start())
	defer e.Close()

	require.IsType(t, Connected{}, recvMessage(t, e))
	sock.sent() // drain the client's own hello

	serverHello := wire.Packet{Flags: wire.FlagHello, UID: 0xBEEF, ID: 7}
	sock.deliver(serverHello.Serialize())

	ack := sock.sent()
	p, _, err := wire.Deserialize(ack)
	require.NoError(t, err)
	require.Equal(t, wire.FlagACK, p.Flags)
	require.Empty(t, p.Payload)
	require.Equal(t, uint16(0xBEEF), p.UID)
	require.Equal(t, uint16(7), p.AckID)
	require.Equal(t, uint16(0), p.ID)
}

func TestEngineAckedDataPacketDecodesVersionAndIncrementsID(t *testing.T) {
	sock := newFakeSocket()
	e := NewEngine(sock, logging.Discard())
	require.NoError(t, e.Start())
	defer e.Close()

	require.IsType(t, Connected{}, recvMessage(t, e))
	sock.sent() // drain hello

	payload := []byte{0x00, 0x0C, 0x00, 0x00, '_', 'v', 'e', 'r', 0x00, 0x02, 0x00, 0x1C}
	pkt := wire.Packet{Flags: wire.FlagACKRequest, UID: 0xBEEF, ID: 42, Payload: payload}
	sock.deliver(pkt.Serialize())

	ack := sock.sent()
	p, _, err := wire.Deserialize(ack)
	require.NoError(t, err)
	require.Equal(t, wire.FlagACK, p.Flags)
	require.Equal(t, uint16(0xBEEF), p.UID)
	require.Equal(t, uint16(42), p.AckID)
	require.Equal(t, uint16(1), p.ID)

	msg := recvMessage(t, e)
	cmdMsg, ok := msg.(CommandMessage)
	require.True(t, ok)
	require.Equal(t, command.Version{Major: 2, Minor: 28}, cmdMsg.Value)

	pkt2 := wire.Packet{Flags: wire.FlagACKRequest, UID: 0xBEEF, ID: 43}
	sock.deliver(pkt2.Serialize())
	ack2 := sock.sent()
	p2, _, err := wire.Deserialize(ack2)
	require.NoError(t, err)
	require.Equal(t, uint16(2), p2.ID)
}

func TestEngineUnknownTagBetweenKnownOnes(t *testing.T) {
	sock := newFakeSocket()
	e := NewEngine(sock, logging.Discard())
	require.NoError(t, e.Start())
	defer e.Close()

	require.IsType(t, Connected{}, recvMessage(t, e))
	sock.sent() // drain hello

	var payload []byte
	payload = append(payload, record("_ver", []byte{0x00, 0x02, 0x00, 0x1c})...)
	payload = append(payload, record("XyZw", []byte{0, 0})...)
	payload = append(payload, record("Powr", []byte{0x03})...)

	pkt := wire.Packet{Flags: wire.FlagACKRequest, UID: 1, ID: 1, Payload: payload}
	sock.deliver(pkt.Serialize())
	sock.sent() // drain the ack

	m1 := recvMessage(t, e).(CommandMessage)
	require.Equal(t, command.Version{Major: 2, Minor: 28}, m1.Value)

	m2 := recvMessage(t, e).(ParsingFailed)
	var unknown *command.UnknownCommandError
	require.ErrorAs(t, m2.Err, &unknown)

	m3 := recvMessage(t, e).(CommandMessage)
	require.Equal(t, command.PowerState{Primary: true, Secondary: true}, m3.Value)
}

func record(tagStr string, body []byte) []byte {
	buf := make([]byte, 8+len(body))
	size := uint16(8 + len(body))
	buf[0] = byte(size >> 8)
	buf[1] = byte(size)
	copy(buf[4:8], tagStr)
	copy(buf[8:], body)
	return buf
}

func TestEngineCloseDoesNotEmitDisconnected(t *testing.T) {
	sock := newFakeSocket()
	e := NewEngine(sock, logging.Discard())
	require.NoError(t, e.Start())

	require.IsType(t, Connected{}, recvMessage(t, e))
	sock.sent()

	require.NoError(t, e.Close())

	select {
	case m, ok := <-e.Messages():
		if ok {
			require.NotIsType(t, Disconnected{}, m)
		}
	case <-time.After(time.Second):
	}
}
