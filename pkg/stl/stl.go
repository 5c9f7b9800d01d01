// Package stl reads binary STL files and flattens them into per-corner
// vertex channels for export. STL carries positions only, so the
// resulting mesh has no UV or color channels.
package stl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/turtlep/gomsh/pkg/geom"
	"github.com/turtlep/gomsh/pkg/msh"
)

// STL format errors.
var (
	ErrTruncatedData = errors.New("truncated STL data")
	ErrASCIIInput    = errors.New("ASCII STL is not supported")
)

const (
	headerSize     = 80
	triangleStride = 50 // normal 12 + 3 vertices 36 + attribute count 2
)

// Parse decodes a binary STL file: an 80-byte header, a u32 triangle
// count and 50-byte little-endian triangle records.
func Parse(data []byte) (*msh.Mesh, error) {
	if len(data) < headerSize+4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedData, len(data))
	}
	// Binary STL has no magic; ASCII files start with the "solid"
	// keyword, but so can a binary header. A file whose declared
	// triangle count matches the binary layout exactly is binary.
	if strings.HasPrefix(string(data[:5]), "solid") && !binarySized(data) {
		return nil, ErrASCIIInput
	}

	triangleCount := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])
	body := data[headerSize+4:]
	if uint64(len(body)) < uint64(triangleCount)*triangleStride {
		return nil, fmt.Errorf("%w: %d triangles declared, %d bytes of data", ErrTruncatedData, triangleCount, len(body))
	}

	mesh := &msh.Mesh{
		Positions: make([]geom.Vec3, 0, int(triangleCount)*3),
	}
	for i := 0; i < int(triangleCount); i++ {
		tri := body[i*triangleStride:]
		// Skip the 12-byte facet normal; the flat format has no normal
		// attribute.
		for v := 0; v < 3; v++ {
			mesh.Positions = append(mesh.Positions, readVec3(tri[12+v*12:]))
		}
	}

	return mesh, nil
}

// ParseFile decodes a binary STL file from disk.
func ParseFile(path string) (*msh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL file: %w", err)
	}
	return Parse(data)
}

// binarySized reports whether the declared triangle count accounts for
// the input length under the binary layout.
func binarySized(data []byte) bool {
	count := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])
	return uint64(len(data)) == uint64(headerSize)+4+uint64(count)*triangleStride
}

func readVec3(b []byte) geom.Vec3 {
	return geom.Vec3{
		X: readFloat32(b[0:4]),
		Y: readFloat32(b[4:8]),
		Z: readFloat32(b[8:12]),
	}
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
