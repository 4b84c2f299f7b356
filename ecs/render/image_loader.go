package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arena/assets"
)

// LoadImage resolves a sprite key through the registry first, then the
// procedural asset set, caching what it finds.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, ok := assets.LoadImage(key)
	if !ok {
		return nil, fmt.Errorf("failed to load image %s", key)
	}
	RegisterImage(key, img)
	return img, nil
}
