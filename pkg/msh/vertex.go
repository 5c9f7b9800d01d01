package msh

import (
	"fmt"

	"github.com/turtlep/gomsh/pkg/geom"
)

// Color is a normalized RGBA vertex color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// White is the default vertex color when a mesh carries no color channel.
var White = Color{1, 1, 1, 1}

// Mesh is the exporter input: flat per-corner vertex channels, already
// triangulated by the caller. UVs and Colors are optional; when present
// they must be parallel to Positions.
type Mesh struct {
	Positions   []geom.Vec3
	UVs         []geom.Vec2
	Colors      []Color
	TextureName string
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// HasUVs returns true if the mesh carries a UV channel.
func (m *Mesh) HasUVs() bool {
	return m.UVs != nil
}

// HasColors returns true if the mesh carries a color channel.
func (m *Mesh) HasColors() bool {
	return m.Colors != nil
}

// Validate checks that optional channels are parallel to the position
// channel. A present-but-empty channel on an empty mesh is valid.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if m.UVs != nil && len(m.UVs) != n {
		return fmt.Errorf("%w: %d UVs for %d positions", ErrChannelMismatch, len(m.UVs), n)
	}
	if m.Colors != nil && len(m.Colors) != n {
		return fmt.Errorf("%w: %d colors for %d positions", ErrChannelMismatch, len(m.Colors), n)
	}
	return nil
}

// Vertex is one fixed-layout output record: position, UV, color,
// 36 bytes once encoded.
type Vertex struct {
	Position geom.Vec3
	UV       geom.Vec2
	Color    Color
}

// VertexStride is the encoded size of one Vertex in bytes.
const VertexStride = 36

// vertexNormalizer assembles output records from the source channels,
// applying the remap matrix, UV flips and channel defaults. It is built
// once per export and holds no mutable state.
type vertexNormalizer struct {
	mesh   *Mesh
	remap  geom.Mat3
	config *ExportConfig
}

// at returns the normalized record for vertex i.
func (n *vertexNormalizer) at(i int) Vertex {
	v := Vertex{
		Position: n.remap.MulVec3(n.mesh.Positions[i]),
		Color:    White,
	}

	if n.mesh.HasUVs() {
		uv := n.mesh.UVs[i]
		// Flips mirror within the [0,1] texture space rather than
		// negating, so coordinates stay in their valid range.
		if n.config.FlipU {
			uv.X = 1 - uv.X
		}
		if n.config.FlipV {
			uv.Y = 1 - uv.Y
		}
		v.UV = uv
	}

	if n.mesh.HasColors() {
		v.Color = n.mesh.Colors[i]
	}

	return v
}
