package msh

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// Magic identifies an MSH file and doubles as the format version tag.
const Magic = "MSH0"

// HeaderSize is the byte offset from the start of the file to the start
// of the attribute table: the 4-byte magic plus six u32 fields. Readers
// must honor the header_size field instead of this constant so the
// header can grow in later versions.
const HeaderSize = 28

// ExportConfig selects the coordinate remap, UV flips and byte order for
// one export. It is passed by the host at the call boundary; the core
// never reads editor state implicitly.
type ExportConfig struct {
	Forward   Axis
	Up        Axis
	FlipU     bool
	FlipV     bool
	BigEndian bool
}

// DefaultConfig returns the conventional Blender-style export settings:
// forward +Y, up +Z, no flips, little-endian.
func DefaultConfig() ExportConfig {
	return ExportConfig{Forward: AxisPosY, Up: AxisPosZ}
}

// byteOrder returns the binary.ByteOrder for the configured endianness.
func (c *ExportConfig) byteOrder() binary.ByteOrder {
	if c.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Serialize encodes the mesh as a complete MSH file in memory.
//
// All validation happens before the first byte is written, so a non-nil
// error means no output was produced. The encode itself is one linear
// pass: header, attribute table, texture name, vertex records.
func Serialize(mesh *Mesh, cfg ExportConfig) ([]byte, error) {
	remap, err := RemapMatrix(cfg.Forward, cfg.Up)
	if err != nil {
		return nil, err
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	vertexCount := mesh.VertexCount()
	textureName := []byte(mesh.TextureName)
	if uint64(vertexCount) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d vertices", ErrMeshTooLarge, vertexCount)
	}
	if uint64(len(textureName)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: texture name is %d bytes", ErrMeshTooLarge, len(textureName))
	}
	total := uint64(HeaderSize) + 3*AttributeStride + uint64(len(textureName)) + uint64(vertexCount)*VertexStride
	if total > math.MaxUint32 {
		return nil, fmt.Errorf("%w: file size %d", ErrMeshTooLarge, total)
	}

	enc := newEncoder(cfg.byteOrder())

	// Header
	enc.writeBytes([]byte(Magic))
	enc.writeU32(uint32(vertexCount))
	enc.writeU32(VertexStride)
	enc.writeU32(3) // attribute count
	enc.writeU32(AttributeStride)
	enc.writeU32(uint32(len(textureName)))
	enc.writeU32(HeaderSize)

	// Attribute table
	for _, attr := range AttributeTable() {
		enc.writeU8(uint8(attr.Semantic))
		enc.writeU8(uint8(attr.Format))
		enc.writeU8(attr.Location)
	}

	// Texture name, raw UTF-8, no terminator
	enc.writeBytes(textureName)

	// Vertex records
	norm := &vertexNormalizer{mesh: mesh, remap: remap, config: &cfg}
	for i := 0; i < vertexCount; i++ {
		v := norm.at(i)
		enc.writeFloat32(v.Position.X)
		enc.writeFloat32(v.Position.Y)
		enc.writeFloat32(v.Position.Z)
		enc.writeFloat32(v.UV.X)
		enc.writeFloat32(v.UV.Y)
		enc.writeFloat32(v.Color.R)
		enc.writeFloat32(v.Color.G)
		enc.writeFloat32(v.Color.B)
		enc.writeFloat32(v.Color.A)
	}

	return enc.bytes(), nil
}

// ExportToPath serializes the mesh and writes it to path. The encode
// completes in memory before the destination is opened, so an I/O error
// never wastes the encode: the caller may retry the write alone.
func ExportToPath(mesh *Mesh, cfg ExportConfig, path string) error {
	data, err := Serialize(mesh, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing MSH file: %w", err)
	}
	return nil
}
