package room

const (
	vertexFloatsPerQuad = 3 * 4 // room for 3 components per corner, 2 are used
	texFloatsPerQuad    = 2 * 4
	indicesPerQuad      = 6
	streamFloatsPerQuad = 2 * 4
)

// arenas are the geometry buffers reused every frame. The vertex and
// texcoord arenas are refilled per bucket; each layer owns an index arena
// holding the quad pattern of its last bucket.
type arenas struct {
	vertices []float32
	texs     []float32
	indices  [][]uint16

	// lastIndex[l] is the index count the pattern in indices[l] was built for.
	lastIndex []int

	// scratch is where the pattern is generated; it only grows.
	scratch []uint16

	vCursor, tCursor int
	quadCap          int
}

func newArenas(capacity, layers int) *arenas {
	a := &arenas{
		vertices:  make([]float32, vertexFloatsPerQuad*capacity),
		texs:      make([]float32, texFloatsPerQuad*capacity),
		indices:   make([][]uint16, layers),
		lastIndex: make([]int, layers),
		scratch:   make([]uint16, indicesPerQuad),
		quadCap:   capacity,
	}
	for l := range a.indices {
		a.indices[l] = make([]uint16, indicesPerQuad*capacity)
	}
	return a
}

func (a *arenas) reset() {
	a.vCursor, a.tCursor = 0, 0
}

// quads is the number of quads appended since reset.
func (a *arenas) quads() int {
	return a.vCursor / streamFloatsPerQuad
}

// appendQuads copies n quads of geometry into the arenas and returns how many
// fit. Short streams are zero padded.
func (a *arenas) appendQuads(verts, texs []float32, n int) int {
	if room := a.quadCap - a.quads(); n > room {
		n = room
	}
	if n <= 0 {
		return 0
	}
	floats := n * streamFloatsPerQuad
	dst := a.vertices[a.vCursor : a.vCursor+floats]
	clear(dst[copy(dst, verts):])
	a.vCursor += floats

	dst = a.texs[a.tCursor : a.tCursor+floats]
	clear(dst[copy(dst, texs):])
	a.tCursor += floats
	return n
}

// ensurePattern makes indices[l] hold the quad pattern for numIndices and
// reports whether it had to be rebuilt.
func (a *arenas) ensurePattern(l, numIndices int) bool {
	if numIndices == a.lastIndex[l] {
		return false
	}
	if numIndices > len(a.scratch) {
		a.scratch = make([]uint16, numIndices+1)
	}
	writeQuadPattern(a.scratch[:numIndices])
	copy(a.indices[l], a.scratch[:numIndices])
	a.lastIndex[l] = numIndices
	return true
}

// writeQuadPattern fills dst with two triangles per quad sharing the (1,2)
// edge: (4q, 4q+1, 4q+2, 4q+1, 4q+2, 4q+3).
func writeQuadPattern(dst []uint16) {
	for i := 0; i+indicesPerQuad <= len(dst); i += indicesPerQuad {
		base := uint16(i / indicesPerQuad * 4)
		dst[i+0] = base + 0
		dst[i+1] = base + 1
		dst[i+2] = base + 2
		dst[i+3] = base + 1
		dst[i+4] = base + 2
		dst[i+5] = base + 3
	}
}

func (a *arenas) vertexStream() []float32 { return a.vertices[:a.vCursor] }
func (a *arenas) texStream() []float32    { return a.texs[:a.tCursor] }

func (a *arenas) indexStream(l, numIndices int) []uint16 {
	return a.indices[l][:numIndices]
}
