package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// TorusParams maps a ring radius and tube radius onto GenMeshTorus, which
// builds a unit ring with tube ratio in [0.1, 1] and scales it by size/2.
func TorusParams(radius, tube float32) (size, ratio float32) {
	if radius <= 0 {
		return 0, 0.1
	}
	return 2 * radius, min(max(tube/radius, 0.1), 1)
}

var (
	octahedronCorners = [6]rl.Vector3{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}}
	octahedronFaces   = [8][3]int{{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2}, {1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2}}
)

// octahedron returns unshared triangle corners and per-face normals for an
// octahedron of the given radius whose faces are split detail times per edge
// and pushed onto the sphere. Detail n gives 8(n+1)² faces. Triangles wind
// counter-clockwise seen from outside.
func octahedron(radius float32, detail int) (vertices, normals []float32) {
	cols := max(detail, 0) + 1
	size := 8 * cols * cols * 9
	vertices = make([]float32, 0, size)
	normals = make([]float32, 0, size)

	emit := func(p, q, r rl.Vector3) {
		p = rl.Vector3Scale(rl.Vector3Normalize(p), radius)
		q = rl.Vector3Scale(rl.Vector3Normalize(q), radius)
		r = rl.Vector3Scale(rl.Vector3Normalize(r), radius)
		n := rl.Vector3Normalize(rl.Vector3CrossProduct(rl.Vector3Subtract(q, p), rl.Vector3Subtract(r, p)))
		if rl.Vector3DotProduct(n, rl.Vector3Add(rl.Vector3Add(p, q), r)) < 0 {
			q, r = r, q
			n = rl.Vector3Negate(n)
		}
		for _, v := range [3]rl.Vector3{p, q, r} {
			vertices = append(vertices, v.X, v.Y, v.Z)
			normals = append(normals, n.X, n.Y, n.Z)
		}
	}

	for _, f := range octahedronFaces {
		a, b, c := octahedronCorners[f[0]], octahedronCorners[f[1]], octahedronCorners[f[2]]
		grid := make([][]rl.Vector3, cols+1)
		for i := 0; i <= cols; i++ {
			aj := rl.Vector3Lerp(a, c, float32(i)/float32(cols))
			bj := rl.Vector3Lerp(b, c, float32(i)/float32(cols))
			rows := cols - i
			grid[i] = make([]rl.Vector3, rows+1)
			for j := 0; j <= rows; j++ {
				if rows == 0 {
					grid[i][j] = aj
				} else {
					grid[i][j] = rl.Vector3Lerp(aj, bj, float32(j)/float32(rows))
				}
			}
		}
		for i := 0; i < cols; i++ {
			for j := 0; j < 2*(cols-i)-1; j++ {
				k := j / 2
				if j%2 == 0 {
					emit(grid[i][k+1], grid[i+1][k], grid[i][k])
				} else {
					emit(grid[i][k+1], grid[i+1][k+1], grid[i+1][k])
				}
			}
		}
	}
	return vertices, normals
}

// OctahedronMesh builds the octahedron on the CPU and uploads it.
// Requires a GL context.
func OctahedronMesh(radius float32, detail int) rl.Mesh {
	vertices, normals := octahedron(radius, detail)
	count := len(vertices) / 3
	texcoords := make([]float32, count*2)
	mesh := rl.Mesh{
		VertexCount:   int32(count),
		TriangleCount: int32(count / 3),
		Vertices:      &vertices[0],
		Normals:       &normals[0],
		Texcoords:     &texcoords[0],
	}
	rl.UploadMesh(&mesh, false)
	return mesh
}
