package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteQuadPattern(t *testing.T) {
	dst := make([]uint16, 18)
	writeQuadPattern(dst)
	assert.Equal(t, []uint16{
		0, 1, 2, 1, 2, 3,
		4, 5, 6, 5, 6, 7,
		8, 9, 10, 9, 10, 11,
	}, dst)
}

func TestArenas_AppendQuads(t *testing.T) {
	a := newArenas(3, 1)

	n := a.appendQuads([]float32{1, 2, 3, 4, 5, 6, 7, 8}, []float32{0, 1, 0, 0, 1, 1, 1, 0}, 1)
	assert.Equal(t, 1, n)

	// short streams are zero padded
	n = a.appendQuads([]float32{9, 9}, nil, 1)
	assert.Equal(t, 1, n)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 9, 0, 0, 0, 0, 0, 0}, a.vertexStream())
	assert.Len(t, a.texStream(), 16)

	// only one quad is left
	n = a.appendQuads(make([]float32, 16), make([]float32, 16), 2)
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, a.quads())
	assert.Zero(t, a.appendQuads(nil, nil, 1))

	a.reset()
	assert.Zero(t, a.quads())
	assert.Empty(t, a.vertexStream())
}

func TestArenas_EnsurePatternPerLayer(t *testing.T) {
	a := newArenas(4, 2)

	assert.True(t, a.ensurePattern(0, 12))
	assert.False(t, a.ensurePattern(0, 12))
	assert.True(t, a.ensurePattern(1, 12), "layers keep separate patterns")
	assert.True(t, a.ensurePattern(0, 6))

	assert.Equal(t, []uint16{0, 1, 2, 1, 2, 3}, a.indexStream(0, 6))
	assert.Equal(t, []uint16{0, 1, 2, 1, 2, 3, 4, 5, 6, 5, 6, 7}, a.indexStream(1, 12))
	assert.Equal(t, 6, a.lastIndex[0])
	assert.Equal(t, 12, a.lastIndex[1])
}

func TestArenas_FullCapacityFitsUint16(t *testing.T) {
	a := newArenas(MaxCapacity, 1)
	n := MaxCapacity * indicesPerQuad
	a.ensurePattern(0, n)
	idx := a.indexStream(0, n)
	assert.Equal(t, uint16(4*MaxCapacity-1), idx[n-1])
}
