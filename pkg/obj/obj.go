// Package obj reads a practical subset of Wavefront OBJ files and
// flattens them into per-corner vertex channels for export: v, vt and f
// statements, with the common vertex-color extension on v lines. Faces
// with more than three corners are fan-triangulated.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/turtlep/gomsh/pkg/geom"
	"github.com/turtlep/gomsh/pkg/msh"
)

// OBJ format errors.
var (
	ErrMalformed   = errors.New("malformed OBJ statement")
	ErrIndexRange  = errors.New("OBJ face index out of range")
	ErrEmptyObject = errors.New("OBJ contains no faces")
)

// parser accumulates indexed data while scanning, then flattens it per
// face corner into the output mesh.
type parser struct {
	positions []geom.Vec3
	colors    []msh.Color
	uvs       []geom.Vec2
	hasColors bool

	out []corner
}

// Parse reads an OBJ document and returns the flattened triangle mesh.
func Parse(r io.Reader) (*msh.Mesh, error) {
	p := &parser{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "v":
			err = p.vertex(fields[1:])
		case "vt":
			err = p.texCoord(fields[1:])
		case "f":
			err = p.face(fields[1:])
		default:
			// vn, o, g, s, usemtl, mtllib and friends carry nothing the
			// flat export format can hold.
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	if len(p.out) == 0 {
		return nil, ErrEmptyObject
	}
	return p.flatten(), nil
}

// flatten materializes the per-corner channels. Optional channels exist
// only when the document actually carried that data; statement order
// within the file does not matter.
func (p *parser) flatten() *msh.Mesh {
	mesh := &msh.Mesh{
		Positions: make([]geom.Vec3, len(p.out)),
	}
	if len(p.uvs) > 0 {
		mesh.UVs = make([]geom.Vec2, len(p.out))
	}
	if p.hasColors {
		mesh.Colors = make([]msh.Color, len(p.out))
	}

	for i, c := range p.out {
		mesh.Positions[i] = p.positions[c.position]
		if mesh.UVs != nil && c.uv >= 0 {
			mesh.UVs[i] = p.uvs[c.uv]
		}
		if mesh.Colors != nil {
			mesh.Colors[i] = p.colors[c.position]
		}
	}
	return mesh
}

// ParseFile reads an OBJ file from disk.
func ParseFile(path string) (*msh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// vertex handles "v x y z" with an optional "r g b" color extension.
func (p *parser) vertex(args []string) error {
	if len(args) != 3 && len(args) != 6 {
		return fmt.Errorf("%w: v expects 3 or 6 values, got %d", ErrMalformed, len(args))
	}

	vals, err := parseFloats(args)
	if err != nil {
		return err
	}

	p.positions = append(p.positions, geom.Vec3{X: vals[0], Y: vals[1], Z: vals[2]})

	color := msh.White
	if len(vals) == 6 {
		color = msh.Color{R: vals[3], G: vals[4], B: vals[5], A: 1}
		p.hasColors = true
	}
	p.colors = append(p.colors, color)
	return nil
}

// texCoord handles "vt u v" (a trailing w is accepted and dropped).
func (p *parser) texCoord(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: vt expects 2 values, got %d", ErrMalformed, len(args))
	}

	vals, err := parseFloats(args[:2])
	if err != nil {
		return err
	}

	p.uvs = append(p.uvs, geom.Vec2{X: vals[0], Y: vals[1]})
	return nil
}

// face handles "f" statements, fan-triangulating polygons and emitting
// one flattened vertex per triangle corner.
func (p *parser) face(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: face with %d corners", ErrMalformed, len(args))
	}

	corners := make([]corner, len(args))
	for i, ref := range args {
		c, err := p.resolveCorner(ref)
		if err != nil {
			return err
		}
		corners[i] = c
	}

	for i := 1; i+1 < len(corners); i++ {
		p.out = append(p.out, corners[0], corners[i], corners[i+1])
	}
	return nil
}

type corner struct {
	position int
	uv       int // -1 when the reference carries no vt index
}

// resolveCorner parses one face reference ("7", "7/3" or "7/3/1",
// "7//1") and resolves 1-based and negative relative indices.
func (p *parser) resolveCorner(ref string) (corner, error) {
	parts := strings.Split(ref, "/")
	if len(parts) == 0 || len(parts) > 3 {
		return corner{}, fmt.Errorf("%w: face reference %q", ErrMalformed, ref)
	}

	pos, err := p.resolveIndex(parts[0], len(p.positions))
	if err != nil {
		return corner{}, err
	}

	c := corner{position: pos, uv: -1}
	if len(parts) > 1 && parts[1] != "" {
		uv, err := p.resolveIndex(parts[1], len(p.uvs))
		if err != nil {
			return corner{}, err
		}
		c.uv = uv
	}
	return c, nil
}

// resolveIndex converts a 1-based (or negative relative) OBJ index to a
// 0-based slice index.
func (p *parser) resolveIndex(s string, length int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrMalformed, s)
	}
	if idx < 0 {
		idx += length
	} else {
		idx--
	}
	if idx < 0 || idx >= length {
		return 0, fmt.Errorf("%w: %s (have %d)", ErrIndexRange, s, length)
	}
	return idx, nil
}

// parseFloats parses a slice of decimal strings as float32.
func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrMalformed, s)
		}
		out[i] = float32(f)
	}
	return out, nil
}
