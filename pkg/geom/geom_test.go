package geom

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3CrossAntiCommutative(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	ab := a.Cross(b)
	ba := b.Cross(a)
	if ab != ba.Scale(-1) {
		t.Errorf("a×b = %v, b×a = %v, expected negations", ab, ba)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{0, 3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	// Zero vector stays zero
	if z := (Vec3{}).Normalize(); !z.IsZero() {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestMat3FromColumns(t *testing.T) {
	// Columns (right, up, forward) send source x/y/z to those directions.
	m := Mat3FromColumns(Vec3{1, 0, 0}, Vec3{0, 0, 1}, Vec3{0, 1, 0})
	got := m.MulVec3(Vec3{1, 2, 3})
	want := Vec3{1, 3, 2}
	if got != want {
		t.Errorf("MulVec3 = %v, want %v", got, want)
	}
}
