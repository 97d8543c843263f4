package asset

import (
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"
)

// ImageLoader decodes a png or jpeg file into an image.Image. Turning the
// decoded image into a GPU texture is the render layer's job, so assets
// stay loadable in headless tools and tests.
func ImageLoader(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
