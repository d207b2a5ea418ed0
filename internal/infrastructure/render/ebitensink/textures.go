package ebitensink

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Textures holds ebiten images by graphic id. It implements
// graphics.Uploader.
type Textures struct {
	images map[int]*ebiten.Image
}

func NewTextures() *Textures {
	return &Textures{images: make(map[int]*ebiten.Image)}
}

func (t *Textures) Upload(id int, img image.Image) error {
	if old, ok := t.images[id]; ok {
		old.Deallocate()
	}
	t.images[id] = ebiten.NewImageFromImage(img)
	return nil
}

func (t *Textures) Release(id int) {
	if img, ok := t.images[id]; ok {
		img.Deallocate()
		delete(t.images, id)
	}
}

// Image returns the resident image for id, or nil.
func (t *Textures) Image(id int) *ebiten.Image {
	return t.images[id]
}

func (t *Textures) Len() int { return len(t.images) }
