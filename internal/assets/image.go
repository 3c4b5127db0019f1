package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	"golang.org/x/image/draw"
)

// LoadImage decodes a PNG or JPEG file into RGBA. When maxSize > 0 and the
// image is larger on either side it is downscaled to fit, keeping its aspect.
func LoadImage(path string, maxSize int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	rgba, err := decodeRGBA(f, maxSize)
	if err != nil {
		return nil, fmt.Errorf("image %q: %w", path, err)
	}
	return rgba, nil
}

func decodeRGBA(r io.Reader, maxSize int) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToRGBA(img, maxSize), nil
}

// ToRGBA copies img into a zero-origin RGBA image, scaling it down with
// Catmull-Rom if it exceeds maxSize.
func ToRGBA(img image.Image, maxSize int) *image.RGBA {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxSize)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FitSize shrinks w x h to fit inside maxSize x maxSize. maxSize <= 0 means no limit.
func FitSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}
