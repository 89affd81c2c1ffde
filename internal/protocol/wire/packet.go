// Package wire implements the ATEM session-transport packet framing: the
// 12-byte header with flags packed into the top bits of the size word, and
// the length-prefixed command-record stream carried in a packet's payload.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the fixed size of a Packet header on the wire.
const HeaderSize = 12

// MaxTotalSize is the largest value the 11-bit size field can carry.
const MaxTotalSize = 0x07FF

// MaxPayloadSize is the largest payload a single Packet can carry given
// MaxTotalSize and HeaderSize.
const MaxPayloadSize = MaxTotalSize - HeaderSize

// Flags is the 5-bit set of packet flags packed into the high bits of the
// size word. Bits outside the known set are reserved: they round-trip
// through Serialize/Deserialize but never drive behavior.
type Flags uint16

const (
	FlagACKRequest Flags = 0x01
	FlagHello      Flags = 0x02
	FlagResend     Flags = 0x04
	FlagACK        Flags = 0x10

	knownFlagsMask Flags = FlagACKRequest | FlagHello | FlagResend | FlagACK
)

// Has reports whether f contains every bit in mask.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// HelloPayload is the fixed 8-byte body every HELLO packet carries. Its
// content is opaque to the client: it is sent and echoed verbatim.
var HelloPayload = [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// Packet is a single datagram in either direction of an ATEM session.
type Packet struct {
	Flags   Flags
	UID     uint16
	AckID   uint16
	ID      uint16
	Payload []byte
}

// NewHello builds the client's initial HELLO packet (uid=0x1337, ack_id=0,
// id=0, the fixed 8-byte body).
func NewHello() Packet {
	return Packet{
		Flags:   FlagHello,
		UID:     0x1337,
		Payload: HelloPayload[:],
	}
}

// Serialize encodes p to its wire form. Bytes 6-9 (the reserved word) are
// always written zero, per §4.2.
func (p Packet) Serialize() []byte {
	total := HeaderSize + len(p.Payload)
	buf := make([]byte, total)

	binary.BigEndian.PutUint16(buf[0:2], uint16(p.Flags)<<11|uint16(total))
	binary.BigEndian.PutUint16(buf[2:4], p.UID)
	binary.BigEndian.PutUint16(buf[4:6], p.AckID)
	// buf[6:10] reserved, left zero.
	binary.BigEndian.PutUint16(buf[10:12], p.ID)
	copy(buf[12:], p.Payload)

	return buf
}

// ErrTruncated indicates a buffer ended before a complete packet header or
// payload could be read.
var ErrTruncated = errors.New("wire: truncated packet")

// Deserialize reads a single Packet from the start of buf and reports how
// many bytes it consumed, so callers can advance past multiple packets
// coalesced into one datagram.
func Deserialize(buf []byte) (Packet, int, error) {
	if len(buf) < 2 {
		return Packet{}, 0, fmt.Errorf("%w: header word", ErrTruncated)
	}

	flagsSize := binary.BigEndian.Uint16(buf[0:2])
	flags := Flags(flagsSize >> 11)
	size := int(flagsSize & 0x07FF)

	if size < HeaderSize {
		return Packet{}, 0, fmt.Errorf("%w: declared size %d below header size", ErrTruncated, size)
	}
	if len(buf) < size {
		return Packet{}, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, size, len(buf))
	}

	p := Packet{
		Flags: flags,
		UID:   binary.BigEndian.Uint16(buf[2:4]),
		AckID: binary.BigEndian.Uint16(buf[4:6]),
		// buf[6:10] reserved, ignored.
		ID: binary.BigEndian.Uint16(buf[10:12]),
	}
	if size > HeaderSize {
		p.Payload = append([]byte(nil), buf[HeaderSize:size]...)
	}

	return p, size, nil
}

// Reader splits a byte buffer into the Packets it contains, supporting the
// batching case where a peer coalesces several packets into one datagram.
// Use it like a bufio.Scanner: call Next until it returns false, then check
// Err.
type Reader struct {
	buf []byte
	cur Packet
	err error
}

// NewReader returns a Reader over buf. buf is not copied; callers must not
// mutate it while reading.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Next advances to the next Packet, returning false when the buffer is
// exhausted or a framing error stops iteration (check Err).
func (r *Reader) Next() bool {
	if len(r.buf) == 0 || r.err != nil {
		return false
	}

	p, n, err := Deserialize(r.buf)
	if err != nil {
		r.err = err
		r.buf = nil
		return false
	}

	r.cur = p
	r.buf = r.buf[n:]
	return true
}

// Packet returns the Packet produced by the most recent call to Next.
func (r *Reader) Packet() Packet { return r.cur }

// Err returns the error that stopped iteration, if any.
func (r *Reader) Err() error { return r.err }
