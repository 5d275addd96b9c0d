package render

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"tilecaster/internal/raycast"
)

// Textures holds the decoded wall strips and sprite images. Loaded once at
// startup; any failure is fatal to the process.
type Textures struct {
	walls   map[raycast.Orientation]*ebiten.Image
	sprites map[string]*ebiten.Image
}

// wallFiles maps each orientation to its material: the x-axis face pair
// shares one texture, the y-axis pair the other, mirroring the flat-mode
// red/green split.
var wallFiles = map[raycast.Orientation]string{
	raycast.FaceWest:  "assets/wall_red.png",
	raycast.FaceEast:  "assets/wall_red.png",
	raycast.FaceNorth: "assets/wall_green.png",
	raycast.FaceSouth: "assets/wall_green.png",
}

var spriteFiles = map[string]string{
	"barrel": "assets/barrel.png",
	"pillar": "assets/pillar.png",
}

// LoadTextures decodes every wall and sprite image from the asset
// filesystem.
func LoadTextures(assets fs.FS) (*Textures, error) {
	t := &Textures{
		walls:   make(map[raycast.Orientation]*ebiten.Image, len(wallFiles)),
		sprites: make(map[string]*ebiten.Image, len(spriteFiles)),
	}
	for face, path := range wallFiles {
		img, err := loadImage(assets, path)
		if err != nil {
			return nil, err
		}
		t.walls[face] = img
	}
	for kind, path := range spriteFiles {
		img, err := loadImage(assets, path)
		if err != nil {
			return nil, err
		}
		t.sprites[kind] = img
	}
	return t, nil
}

func loadImage(assets fs.FS, path string) (*ebiten.Image, error) {
	f, err := assets.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Wall returns the texture for a wall orientation.
func (t *Textures) Wall(face raycast.Orientation) *ebiten.Image {
	return t.walls[face]
}

// Sprite returns the image for an entity kind, nil if unknown.
func (t *Textures) Sprite(kind string) *ebiten.Image {
	return t.sprites[kind]
}
