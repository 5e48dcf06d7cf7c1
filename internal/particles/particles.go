// Package particles scatters the background point field through the whole
// scroll depth of the portfolio.
package particles

import "math/rand"

// Field holds particle positions as flat xyz triples.
type Field struct {
	Positions []float32
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.Positions) / 3
}

// At returns the position of particle i.
func (f *Field) At(i int) [3]float32 {
	return [3]float32{f.Positions[i*3], f.Positions[i*3+1], f.Positions[i*3+2]}
}

// Generate places count particles. X and Z are uniform in (-spread/2, spread/2);
// Y runs from half a spacing above the first section down past the last one:
// (spacing*0.5 - spacing*sections, spacing*0.5].
func Generate(count int, spread, spacing float32, sections int, rng *rand.Rand) *Field {
	if count < 0 {
		count = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	f := &Field{Positions: make([]float32, count*3)}
	depth := spacing * float32(sections)
	for i := 0; i < count; i++ {
		f.Positions[i*3+0] = (rng.Float32() - 0.5) * spread
		f.Positions[i*3+1] = spacing*0.5 - rng.Float32()*depth
		f.Positions[i*3+2] = (rng.Float32() - 0.5) * spread
	}
	return f
}
