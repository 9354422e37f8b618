package media

import (
	"embed"
	"errors"
	"image"

	"golang.org/x/image/bmp"
)

//go:embed media/*/*.bmp
var imgs embed.FS

// LoadImage loads the specified image of the specified type.
func LoadImage(typ Type, name string) (image.Image, error) {
	w, h := typ.Size()
	if w == 0 || h == 0 {
		return nil, errors.New("invalid media type")
	}

	r, err := imgs.Open("media/" + string(typ) + "/" + name + ".bmp")
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fi, err := r.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, errors.New("cannot open directory")
	}

	img, err := bmp.Decode(r)
	if err != nil {
		return nil, errors.New("decode " + name + ": " + err.Error())
	}

	b := img.Bounds()
	if int(w) != b.Dx() || int(h) != b.Dy() {
		return nil, errors.New("invalid image size for type " + string(typ))
	}

	return img, nil
}

// Lit reports whether the pixel at x, y of img is on. The sheets are drawn white on black.
func Lit(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r+g+b > 3*0x7FFF
}
