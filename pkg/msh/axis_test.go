package msh

import (
	"errors"
	"testing"

	"github.com/turtlep/gomsh/pkg/geom"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		input    string
		expected Axis
	}{
		{"X", AxisPosX},
		{"+X", AxisPosX},
		{"-X", AxisNegX},
		{"y", AxisPosY},
		{"+Y", AxisPosY},
		{"-y", AxisNegY},
		{"Z", AxisPosZ},
		{" -Z ", AxisNegZ},
	}

	for _, tc := range tests {
		got, err := ParseAxis(tc.input)
		if err != nil {
			t.Errorf("ParseAxis(%q) failed: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseAxis(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}

func TestParseAxis_Invalid(t *testing.T) {
	for _, input := range []string{"", "W", "+", "XY", "--X"} {
		if _, err := ParseAxis(input); !errors.Is(err, ErrInvalidAxis) {
			t.Errorf("ParseAxis(%q) = %v, expected ErrInvalidAxis", input, err)
		}
	}
}

func TestAxis_String(t *testing.T) {
	tests := []struct {
		axis     Axis
		expected string
	}{
		{AxisPosX, "+X"},
		{AxisNegX, "-X"},
		{AxisPosY, "+Y"},
		{AxisNegY, "-Y"},
		{AxisPosZ, "+Z"},
		{AxisNegZ, "-Z"},
		{Axis(9), "Axis(9)"},
	}

	for _, tc := range tests {
		if tc.axis.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.axis.String(), tc.expected)
		}
	}
}

func TestRemapMatrix_BlenderDefault(t *testing.T) {
	// Forward +Y, up +Z: side = (+Y)×(+Z) = +X, so source x stays,
	// source y goes up, source z goes forward.
	m, err := RemapMatrix(AxisPosY, AxisPosZ)
	if err != nil {
		t.Fatalf("RemapMatrix failed: %v", err)
	}

	got := m.MulVec3(geom.Vec3{X: 1, Y: 2, Z: 3})
	want := geom.Vec3{X: 1, Y: 3, Z: 2}
	if got != want {
		t.Errorf("remap(1,2,3) = %v, expected %v", got, want)
	}
}

func TestRemapMatrix_Identity(t *testing.T) {
	// Forward +Z, up +Y: side = (+Z)×(+Y) = -X.
	m, err := RemapMatrix(AxisPosZ, AxisPosY)
	if err != nil {
		t.Fatalf("RemapMatrix failed: %v", err)
	}

	got := m.MulVec3(geom.Vec3{X: 1, Y: 2, Z: 3})
	want := geom.Vec3{X: -1, Y: 2, Z: 3}
	if got != want {
		t.Errorf("remap(1,2,3) = %v, expected %v", got, want)
	}
}

func TestRemapMatrix_NegatedAxes(t *testing.T) {
	// Forward -Y, up +Z: side = (-Y)×(+Z) = -X.
	m, err := RemapMatrix(AxisNegY, AxisPosZ)
	if err != nil {
		t.Fatalf("RemapMatrix failed: %v", err)
	}

	got := m.MulVec3(geom.Vec3{X: 1, Y: 2, Z: 3})
	want := geom.Vec3{X: -1, Y: -3, Z: 2}
	if got != want {
		t.Errorf("remap(1,2,3) = %v, expected %v", got, want)
	}
}

func TestRemapMatrix_DegeneratePairs(t *testing.T) {
	tests := []struct {
		forward, up Axis
	}{
		{AxisPosY, AxisPosY}, // identical
		{AxisPosZ, AxisNegZ}, // anti-parallel
		{AxisNegX, AxisPosX},
		{AxisNegX, AxisNegX},
	}

	for _, tc := range tests {
		if _, err := RemapMatrix(tc.forward, tc.up); !errors.Is(err, ErrInvalidAxes) {
			t.Errorf("RemapMatrix(%v, %v) = %v, expected ErrInvalidAxes", tc.forward, tc.up, err)
		}
	}
}
