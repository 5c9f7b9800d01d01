package obj

import (
	"errors"
	"strings"
	"testing"

	"github.com/turtlep/gomsh/pkg/geom"
	"github.com/turtlep/gomsh/pkg/msh"
)

const cubeFace = `
# one quad, textured
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`

func TestParse_QuadTriangulation(t *testing.T) {
	mesh, err := Parse(strings.NewReader(cubeFace))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// One quad fans into two triangles, six corners.
	if mesh.VertexCount() != 6 {
		t.Fatalf("vertex count = %d, expected 6", mesh.VertexCount())
	}
	if !mesh.HasUVs() {
		t.Fatal("expected UV channel")
	}
	if mesh.HasColors() {
		t.Error("unexpected color channel")
	}

	// Fan order: (0,1,2) then (0,2,3).
	wantPos := []geom.Vec3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	for i, want := range wantPos {
		if mesh.Positions[i] != want {
			t.Errorf("position %d = %v, expected %v", i, mesh.Positions[i], want)
		}
	}

	if mesh.UVs[4] != (geom.Vec2{X: 1, Y: 1}) {
		t.Errorf("UV 4 = %v, expected (1,1)", mesh.UVs[4])
	}
}

func TestParse_PositionsOnly(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if mesh.HasUVs() {
		t.Error("unexpected UV channel")
	}
	if mesh.HasColors() {
		t.Error("unexpected color channel")
	}
	if err := mesh.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestParse_VertexColors(t *testing.T) {
	src := `
v 0 0 0 1 0 0
v 1 0 0 0 1 0
v 0 1 0 0 0 1
f 1 2 3
`
	mesh, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !mesh.HasColors() {
		t.Fatal("expected color channel")
	}
	if mesh.Colors[0] != (msh.Color{R: 1, A: 1}) {
		t.Errorf("color 0 = %v, expected red", mesh.Colors[0])
	}
	if mesh.Colors[2] != (msh.Color{B: 1, A: 1}) {
		t.Errorf("color 2 = %v, expected blue", mesh.Colors[2])
	}
}

func TestParse_NegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mesh, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if mesh.VertexCount() != 3 {
		t.Errorf("vertex count = %d, expected 3", mesh.VertexCount())
	}
	if mesh.Positions[1] != (geom.Vec3{X: 1}) {
		t.Errorf("position 1 = %v, expected (1,0,0)", mesh.Positions[1])
	}
}

func TestParse_NormalOnlyReferences(t *testing.T) {
	// v//vn references: no vt index, no UV channel.
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1//1 2//1 3//1
`
	mesh, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if mesh.HasUVs() {
		t.Error("unexpected UV channel for v//vn faces")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected error
	}{
		{"no faces", "v 0 0 0\n", ErrEmptyObject},
		{"short vertex", "v 1 2\n", ErrMalformed},
		{"bad number", "v 1 2 x\n", ErrMalformed},
		{"two corner face", "v 0 0 0\nv 1 1 1\nf 1 2\n", ErrMalformed},
		{"index out of range", "v 0 0 0\nf 1 2 3\n", ErrIndexRange},
		{"zero index", "v 0 0 0\nf 0 1 1\n", ErrIndexRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.src)); !errors.Is(err, tc.expected) {
				t.Errorf("Parse = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestParse_FeedsSerializer(t *testing.T) {
	mesh, err := Parse(strings.NewReader(cubeFace))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	mesh.TextureName = "cube.png"

	data, err := msh.Serialize(mesh, msh.DefaultConfig())
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	file, err := msh.Parse(data)
	if err != nil {
		t.Fatalf("msh.Parse failed: %v", err)
	}
	if file.VertexCount() != 6 {
		t.Errorf("round-trip vertex count = %d, expected 6", file.VertexCount())
	}
}
