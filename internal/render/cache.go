package render

import (
	"image"
	"sync"

	"vivopaint/internal/state"
)

// Cache memoizes the rasterized frame between stroke mutations. A frame stays
// valid as long as the stroke revision, the frame size and the scale all
// match the previous pull; repaints in between return the identical image
// without re-stroking the path.
type Cache struct {
	mu    sync.Mutex
	img   *image.RGBA
	rev   uint64
	w, h  int
	scale float32
	valid bool
}

// Frame returns the frame for the stroke at revision rev, rendered at w by h
// pixels with the given window-to-pixel scale. The image starts fully
// transparent so the window background shows through around the stroke.
func (c *Cache) Frame(pts state.Stroke, rev uint64, w, h int, scale float32, sty Style) image.Image {
	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.rev == rev && c.w == w && c.h == h && c.scale == scale {
		return c.img
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Polyline(img, pts, scale, sty)

	c.img, c.rev, c.w, c.h, c.scale, c.valid = img, rev, w, h, scale, true
	return img
}
