package asset

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a texture file into RGBA pixels. PNG, JPEG, BMP, TIFF and
// WebP are recognized.
func LoadImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w: %w", path, ErrAssetLoad, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w: %w", path, ErrAssetLoad, err)
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, nil
	}

	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// LoadCubemapFaces loads the six faces of a cubemap from dir. Every face must
// have the same square size.
func LoadCubemapFaces(dir string, faces []string) ([]*image.RGBA, error) {
	if len(faces) != 6 {
		return nil, fmt.Errorf("cubemap in %s needs 6 faces, got %d: %w", dir, len(faces), ErrAssetLoad)
	}

	images := make([]*image.RGBA, 0, len(faces))
	for _, face := range faces {
		img, err := LoadImage(filepath.Join(dir, face))
		if err != nil {
			return nil, err
		}
		if size := img.Rect.Size(); size.X != size.Y || (len(images) > 0 && size != images[0].Rect.Size()) {
			return nil, fmt.Errorf("cubemap face %s is %v: %w", face, size, ErrAssetLoad)
		}
		images = append(images, img)
	}
	return images, nil
}
