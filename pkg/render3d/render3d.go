// Package render3d exports a 3-dimensional paving as a 3MF mesh
// (github.com/hpinc/go3mf), extruding every enabled leaf's box into
// the 12 triangles of a rectangular solid.
package render3d

import (
	"fmt"
	"io"

	"github.com/chazu/paving/pkg/paving"
	"github.com/hpinc/go3mf"
)

func requireDimension3(subset paving.GridTreeSubset) error {
	if subset.Grid().Dimension() != 3 {
		return fmt.Errorf("render3d: subset has dimension %d, want 3", subset.Grid().Dimension())
	}
	return nil
}

// boxVertices returns the 8 corners of box in the fixed winding order
// boxTriangles' face indices assume.
func boxVertices(box paving.Box) [8]go3mf.Point3D {
	x0, x1 := float32(box.Axis(0).Lower), float32(box.Axis(0).Upper)
	y0, y1 := float32(box.Axis(1).Lower), float32(box.Axis(1).Upper)
	z0, z1 := float32(box.Axis(2).Lower), float32(box.Axis(2).Upper)
	return [8]go3mf.Point3D{
		{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
	}
}

// boxTriangles lists the 12 triangles of a cube indexed into the
// vertex order boxVertices returns, one pair per face.
var boxTriangles = [12][3]uint32{
	{0, 1, 2}, {0, 2, 3}, // bottom
	{4, 6, 5}, {4, 7, 6}, // top
	{0, 4, 5}, {0, 5, 1}, // front
	{1, 5, 6}, {1, 6, 2}, // right
	{2, 6, 7}, {2, 7, 3}, // back
	{3, 7, 4}, {3, 4, 0}, // left
}

// BuildMesh assembles every enabled leaf of subset into a single
// go3mf.Mesh, one disjoint box per cell (faces between adjacent cells
// are not merged; Recombine the paving first to keep the mesh small).
func BuildMesh(subset paving.GridTreeSubset) (*go3mf.Mesh, error) {
	if err := requireDimension3(subset); err != nil {
		return nil, err
	}
	mesh := &go3mf.Mesh{}
	for _, cell := range subset.Cells() {
		base := uint32(len(mesh.Vertices.Vertex))
		verts := boxVertices(cell.Box())
		mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, verts[:]...)
		for _, tri := range boxTriangles {
			mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{
				V1: base + tri[0],
				V2: base + tri[1],
				V3: base + tri[2],
			})
		}
	}
	return mesh, nil
}

// WriteModel writes subset as a complete 3MF package to w.
func WriteModel(w io.Writer, subset paving.GridTreeSubset) error {
	mesh, err := BuildMesh(subset)
	if err != nil {
		return err
	}
	model := &go3mf.Model{}
	model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
		ID:   1,
		Mesh: mesh,
	})
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	return go3mf.NewEncoder(w).Encode(model)
}
