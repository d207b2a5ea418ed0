package room

import (
	"github.com/younwookim/room/internal/domain/object"
)

// FrameStats describes the last Draw.
type FrameStats struct {
	Buckets       int // draw calls issued
	Quads         int // quads submitted
	IndexRebuilds int // index patterns regenerated
	Dropped       int // quads that did not fit the arenas
}

func inBucket(o object.GameObject, layer, tex int) bool {
	return o.GraphicID() == tex && o.Layer() == layer && o.IndexCount() > 0 && o.OnScreen()
}

// Draw submits every visible object to sink, one draw call per non-empty
// (layer, texture) bucket. Layers go low to high, textures ascend within a
// layer, objects keep insertion order within a bucket. Graphics that asked
// to be loaded are handed to the graphics helper afterwards.
func (r *Room) Draw(sink Sink) {
	r.stats = FrameStats{}

	sink.SetProjection(r.camera.Projection())
	sink.ResetModelView()

	maxID := -1
	if r.view.Graphics != nil {
		maxID = r.view.Graphics.MaxGraphicID()
	}

	for l := 0; l < r.layers; l++ {
		for t := 0; t <= maxID; t++ {
			r.drawBucket(sink, l, t)
		}
	}

	r.loadPending()
}

func (r *Room) drawBucket(sink Sink, l, t int) {
	numObs := 0
	for i := 0; i < r.objects.len(); i++ {
		if inBucket(r.objects.at(i), l, t) {
			numObs++
		}
	}
	if numObs == 0 {
		return
	}

	r.arenas.reset()
	for i := 0; i < r.objects.len(); i++ {
		o := r.objects.at(i)
		if !inBucket(o, l, t) {
			continue
		}
		want := o.IndexCount() / indicesPerQuad
		got := r.arenas.appendQuads(o.Vertices(), o.GraphicVerts(), want)
		if got < want {
			r.stats.Dropped += want - got
		}
	}
	if r.stats.Dropped > 0 && !r.overflowReported {
		r.overflowReported = true
		Logger().Warn("room: arena capacity exceeded, quads dropped",
			"capacity", r.capacity, "layer", l, "texture", t, "dropped", r.stats.Dropped)
	}

	quads := r.arenas.quads()
	if quads == 0 {
		return
	}
	numIndices := quads * indicesPerQuad
	if r.arenas.ensurePattern(l, numIndices) {
		r.stats.IndexRebuilds++
		Logger().Debug("room: index pattern rebuilt", "layer", l, "indices", numIndices)
	}

	c := r.colors[l]
	sink.SetColor(c[0], c[1], c[2], c[3])
	sink.BindTexture(t)
	sink.VertexPointer(r.arenas.vertexStream())
	sink.TexCoordPointer(r.arenas.texStream())
	sink.DrawElements(r.arenas.indexStream(l, numIndices))

	r.stats.Buckets++
	r.stats.Quads += quads
}

func (r *Room) loadPending() {
	if r.view.Graphics == nil {
		return
	}
	for i := 0; i < r.objects.len(); i++ {
		if g := r.objects.at(i).Graphic(); g != nil && g.ShouldLoad() {
			r.view.Graphics.AddGraphic(g)
		}
	}
}

// Stats returns counters of the last Draw.
func (r *Room) Stats() FrameStats {
	return r.stats
}
