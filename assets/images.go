package assets

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/arena/common"
)

// Images are drawn procedurally at startup; the game ships no bitmap files.
var (
	Player     *ebiten.Image
	Enemy      *ebiten.Image
	Meteor     *ebiten.Image
	Bullet     *ebiten.Image
	Background *ebiten.Image
	Replay     *ebiten.Image
)

var (
	playerColor = color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}
	enemyColor  = color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	meteorColor = color.NRGBA{R: 0x8d, G: 0x6e, B: 0x63, A: 0xff}
	craterColor = color.NRGBA{R: 0x5d, G: 0x40, B: 0x37, A: 0xff}
	bulletColor = color.NRGBA{R: 0xff, G: 0xee, B: 0x58, A: 0xff}
	skyColor    = color.NRGBA{R: 0x0b, G: 0x0d, B: 0x1a, A: 0xff}
)

// Load builds every image. It must run after ebiten is importable in the
// current process but may run before the game loop starts.
func Load() {
	if Player != nil {
		return
	}
	Player = newPlayerImage(48)
	Enemy = newEnemyImage(44)
	Meteor = newMeteorImage(56)
	Bullet = newBulletImage(6, 16)
	Background = newBackground(common.BaseWidth, common.BaseHeight)
	Replay = newReplayImage(48)
}

// LoadImage returns the image registered under a prefab sprite key.
func LoadImage(key string) (*ebiten.Image, bool) {
	Load()
	switch key {
	case "player":
		return Player, true
	case "enemy":
		return Enemy, true
	case "meteor":
		return Meteor, true
	case "bullet":
		return Bullet, true
	case "background":
		return Background, true
	case "replay":
		return Replay, true
	}
	return nil, false
}

func newPlayerImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	vector.FillRect(img, s*0.42, 0, s*0.16, s*0.4, playerColor, false)
	vector.FillCircle(img, s/2, s*0.6, s*0.32, playerColor, true)
	vector.FillRect(img, s*0.08, s*0.62, s*0.84, s*0.16, playerColor, false)
	vector.FillCircle(img, s/2, s*0.56, s*0.1, color.White, true)
	return img
}

func newEnemyImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	vector.FillCircle(img, s/2, s/2, s*0.45, enemyColor, true)
	vector.StrokeCircle(img, s/2, s/2, s*0.3, 3, color.Black, true)
	vector.FillCircle(img, s*0.35, s*0.45, s*0.07, color.White, true)
	vector.FillCircle(img, s*0.65, s*0.45, s*0.07, color.White, true)
	return img
}

func newMeteorImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	vector.FillCircle(img, s/2, s/2, s*0.47, meteorColor, true)
	vector.FillCircle(img, s*0.35, s*0.35, s*0.1, craterColor, true)
	vector.FillCircle(img, s*0.62, s*0.58, s*0.14, craterColor, true)
	vector.FillCircle(img, s*0.4, s*0.72, s*0.06, craterColor, true)
	return img
}

func newBulletImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	vector.FillRect(img, 0, 0, float32(w), float32(h), bulletColor, false)
	return img
}

func newBackground(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(skyColor)
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 160; i++ {
		x := float32(r.IntN(w))
		y := float32(r.IntN(h))
		a := uint8(80 + r.IntN(175))
		vector.FillRect(img, x, y, 2, 2, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: a}, false)
	}
	return img
}

func newReplayImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	vector.StrokeCircle(img, s/2, s/2, s*0.32, 4, color.White, true)
	vector.FillRect(img, s*0.5, s*0.08, s*0.2, s*0.2, color.White, false)
	return img
}
