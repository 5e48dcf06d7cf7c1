package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// Transform returns the model matrix for scale, then Euler XYZ rotation
// (Z applied first, X last), then translation. Rotation is in radians.
func Transform(position, rotation, scale [3]float32) rl.Matrix {
	rot := rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixRotateZ(rotation[2]), rl.MatrixRotateY(rotation[1])), rl.MatrixRotateX(rotation[0]))
	scaleM := rl.MatrixScale(scale[0], scale[1], scale[2])
	transM := rl.MatrixTranslate(position[0], position[1], position[2])
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleM, rot), transM)
}
