package msh

import (
	"bytes"
	"encoding/binary"
	"math"
)

// encoder appends primitive values to a growable buffer in a fixed byte
// order. Every multi-byte value in one MSH file goes through the same
// encoder, so the whole file shares one endianness.
type encoder struct {
	buf   bytes.Buffer
	order binary.ByteOrder
}

func newEncoder(order binary.ByteOrder) *encoder {
	return &encoder{order: order}
}

// writeU8 appends a single byte.
func (e *encoder) writeU8(v uint8) {
	e.buf.WriteByte(v)
}

// writeU32 appends a 32-bit unsigned integer.
func (e *encoder) writeU32(v uint32) {
	var b [4]byte
	e.order.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

// writeFloat32 appends an IEEE-754 single precision float.
func (e *encoder) writeFloat32(v float32) {
	e.writeU32(math.Float32bits(v))
}

// writeBytes appends raw bytes verbatim.
func (e *encoder) writeBytes(b []byte) {
	e.buf.Write(b)
}

// len returns the number of bytes written so far.
func (e *encoder) len() int {
	return e.buf.Len()
}

// bytes returns the accumulated buffer.
func (e *encoder) bytes() []byte {
	return e.buf.Bytes()
}
