package msh

import "fmt"

// AttributeSemantic identifies what a vertex attribute means to the
// runtime loader.
type AttributeSemantic uint8

// Attribute semantics.
const (
	SemanticPosition AttributeSemantic = 0
	SemanticTexCoord AttributeSemantic = 1
	SemanticColor    AttributeSemantic = 2
)

// String returns a human-readable semantic name.
func (s AttributeSemantic) String() string {
	switch s {
	case SemanticPosition:
		return "POSITION"
	case SemanticTexCoord:
		return "TEXCOORD"
	case SemanticColor:
		return "COLOR"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// AttributeFormat encodes the component layout of an attribute. The id
// doubles as the component count; the scalar type is always float32.
type AttributeFormat uint8

// Attribute formats.
const (
	FormatFloat2 AttributeFormat = 2
	FormatFloat3 AttributeFormat = 3
	FormatFloat4 AttributeFormat = 4
)

// String returns a human-readable format name.
func (f AttributeFormat) String() string {
	switch f {
	case FormatFloat2:
		return "FLOAT2"
	case FormatFloat3:
		return "FLOAT3"
	case FormatFloat4:
		return "FLOAT4"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// ComponentCount returns the number of float32 components.
func (f AttributeFormat) ComponentCount() int {
	return int(f)
}

// Attribute describes one vertex attribute: 3 bytes on disk.
type Attribute struct {
	Semantic AttributeSemantic
	Format   AttributeFormat
	Location uint8
}

// AttributeStride is the encoded size of one Attribute in bytes.
const AttributeStride = 3

// AttributeTable returns the descriptor table for the fixed vertex
// layout. The table is independent of the mesh data: the record format
// is closed, so the loader always sees position, texcoord, color at
// shader locations 0, 1, 2.
func AttributeTable() [3]Attribute {
	return [3]Attribute{
		{SemanticPosition, FormatFloat3, 0},
		{SemanticTexCoord, FormatFloat2, 1},
		{SemanticColor, FormatFloat4, 2},
	}
}
