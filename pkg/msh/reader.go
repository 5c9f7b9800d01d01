package msh

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/turtlep/gomsh/pkg/geom"
)

// File is a fully decoded MSH file.
type File struct {
	ByteOrder    binary.ByteOrder
	VertexStride uint32
	HeaderSize   uint32
	Attributes   []Attribute
	TextureName  string
	Vertices     []Vertex
}

// VertexCount returns the number of decoded vertex records.
func (f *File) VertexCount() int {
	return len(f.Vertices)
}

// Parse decodes a complete MSH file from raw bytes.
//
// The format does not record its own endianness; Parse recovers it from
// the vertex_stride field, which is the constant 36 in every version of
// the format and reads as a different value under the wrong byte order.
func Parse(data []byte) (*File, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedData, len(data))
	}

	if string(data[0:4]) != Magic {
		return nil, ErrInvalidMagic
	}

	order, err := detectByteOrder(data)
	if err != nil {
		return nil, err
	}

	vertexCount := order.Uint32(data[4:8])
	vertexStride := order.Uint32(data[8:12])
	attrCount := order.Uint32(data[12:16])
	attrStride := order.Uint32(data[16:20])
	textureNameLen := order.Uint32(data[20:24])
	headerSize := order.Uint32(data[24:28])

	if headerSize < HeaderSize || uint64(headerSize) > uint64(len(data)) {
		return nil, fmt.Errorf("%w: header_size %d", ErrCorruptHeader, headerSize)
	}
	if attrStride < AttributeStride {
		return nil, fmt.Errorf("%w: attribute_stride %d", ErrCorruptHeader, attrStride)
	}

	// Each section is validated against the remaining input before its
	// size is multiplied out, so oversized counts in a hostile header
	// cannot wrap the running total past the truncation check.
	remaining := uint64(len(data)) - uint64(headerSize)
	if uint64(attrCount) > remaining/uint64(attrStride) {
		return nil, fmt.Errorf("%w: %d attributes declared, %d bytes left", ErrTruncatedData, attrCount, remaining)
	}
	attrEnd := uint64(headerSize) + uint64(attrCount)*uint64(attrStride)

	remaining = uint64(len(data)) - attrEnd
	if uint64(textureNameLen) > remaining {
		return nil, fmt.Errorf("%w: texture name of %d bytes, %d bytes left", ErrTruncatedData, textureNameLen, remaining)
	}
	nameEnd := attrEnd + uint64(textureNameLen)

	remaining = uint64(len(data)) - nameEnd
	if uint64(vertexCount) > remaining/uint64(vertexStride) {
		return nil, fmt.Errorf("%w: %d vertices declared, %d bytes left", ErrTruncatedData, vertexCount, remaining)
	}

	file := &File{
		ByteOrder:    order,
		VertexStride: vertexStride,
		HeaderSize:   headerSize,
		Attributes:   make([]Attribute, attrCount),
		TextureName:  string(data[attrEnd:nameEnd]),
		Vertices:     make([]Vertex, vertexCount),
	}

	// Attribute table. Strides beyond the 3 known bytes are skipped so
	// descriptors can grow without breaking old readers.
	for i := range file.Attributes {
		off := uint64(headerSize) + uint64(i)*uint64(attrStride)
		file.Attributes[i] = Attribute{
			Semantic: AttributeSemantic(data[off]),
			Format:   AttributeFormat(data[off+1]),
			Location: data[off+2],
		}
	}

	for i := range file.Vertices {
		off := nameEnd + uint64(i)*uint64(vertexStride)
		file.Vertices[i] = parseVertex(data[off:off+uint64(vertexStride)], order)
	}

	return file, nil
}

// detectByteOrder picks the byte order under which the vertex_stride
// field decodes to its required constant value.
func detectByteOrder(data []byte) (binary.ByteOrder, error) {
	if binary.LittleEndian.Uint32(data[8:12]) == VertexStride {
		return binary.LittleEndian, nil
	}
	if binary.BigEndian.Uint32(data[8:12]) == VertexStride {
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("%w: vertex_stride is not %d in either byte order", ErrCorruptHeader, VertexStride)
}

// parseVertex decodes one 36-byte record.
func parseVertex(b []byte, order binary.ByteOrder) Vertex {
	f := func(i int) float32 {
		return math.Float32frombits(order.Uint32(b[i*4:]))
	}
	return Vertex{
		Position: geom.Vec3{X: f(0), Y: f(1), Z: f(2)},
		UV:       geom.Vec2{X: f(3), Y: f(4)},
		Color:    Color{R: f(5), G: f(6), B: f(7), A: f(8)},
	}
}

// ParseFile decodes an MSH file from disk.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading MSH file: %w", err)
	}
	return Parse(data)
}
