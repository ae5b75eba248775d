package widgets

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a component is built without any entries.
var ErrEmpty = errors.New("widgets: no entries")

// Gallery steps through a fixed list of images, wrapping at both ends.
type Gallery struct {
	Images []string
	Index  int
}

// NewGallery returns a gallery positioned on the first image.
func NewGallery(images ...string) (*Gallery, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("gallery: %w", ErrEmpty)
	}
	return &Gallery{Images: append([]string(nil), images...)}, nil
}

// Next advances one image and returns the new index.
func (g *Gallery) Next() int {
	return g.At(g.Index + 1)
}

// Prev goes back one image and returns the new index.
func (g *Gallery) Prev() int {
	return g.At(g.Index - 1)
}

// At moves to i, wrapped into range, and returns the resulting index.
func (g *Gallery) At(i int) int {
	g.Index = wrap(i, len(g.Images))
	return g.Index
}

// Current returns the image at the current index.
func (g *Gallery) Current() string {
	if len(g.Images) == 0 {
		return ""
	}
	return g.Images[wrap(g.Index, len(g.Images))]
}

// Alt is the alternative text for the current image, numbered from one.
func (g *Gallery) Alt() string {
	return fmt.Sprintf("Gallery Image %d", wrap(g.Index, len(g.Images))+1)
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
