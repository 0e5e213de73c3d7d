// Package edge finds candidate points on Earth's limb in a decoded image,
// by thresholding intensity or by convolving with a gradient mask, and
// groups arbitrary "on" pixels into connected components.
package edge

// Image is a single-channel, row-major view of a source picture. Edge
// detection only ever looks at intensity, the first channel of whatever the
// original image was.
type Image struct {
	Width  int
	Height int
	Gray   []uint8
}

// NewImage wraps gray (row-major, length width*height) as an Image.
func NewImage(width, height int, gray []uint8) *Image {
	return &Image{Width: width, Height: height, Gray: gray}
}

// At returns the intensity at pixel (x, y).
func (img *Image) At(x, y int) uint8 {
	return img.Gray[y*img.Width+x]
}

// AtIndex returns the intensity at the row-major linear index.
func (img *Image) AtIndex(index uint64) uint8 {
	return img.Gray[index]
}

// Len returns the number of pixels in the image.
func (img *Image) Len() uint64 {
	return uint64(img.Width) * uint64(img.Height)
}
