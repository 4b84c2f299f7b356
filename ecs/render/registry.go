package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// The registry is only touched from the game goroutine.
var (
	images  = map[string]*ebiten.Image{}
	missing = map[string]bool{}
)

// RegisterImage stores an image by sprite key, replacing any earlier one.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
	delete(missing, key)
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// Preload resolves every key up front so a missing sprite fails at startup
// instead of on the first frame it is drawn.
func Preload(keys ...string) error {
	for _, key := range keys {
		if _, err := LoadImage(key); err != nil {
			return err
		}
	}
	return nil
}

// Keys lists the registered sprite keys in order.
func Keys() []string {
	keys := make([]string, 0, len(images))
	for k := range images {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// markMissing reports whether key is newly missing.
func markMissing(key string) bool {
	if missing[key] {
		return false
	}
	missing[key] = true
	return true
}
