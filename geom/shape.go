package geom

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Shape wraps a binary image crop together with the ellipse-likeness
// test the finder stage runs against it.
type Shape struct {
	Image BinaryImage
}

// NewShape wraps img.
func NewShape(img BinaryImage) Shape { return Shape{Image: img} }

// Circle returns a filled circular Shape inscribed in a width x height
// canvas. It is the finder template rasterized by the generator stage.
func Circle(width, height int) Shape {
	img := NewBinaryImage(width, height)
	cx, cy := float64(width-1)/2, float64(height-1)/2
	rx, ry := float64(width)/2, float64(height)/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			if dx*dx+dy*dy <= 1.0 {
				img.Set(x, y, true)
			}
		}
	}
	return Shape{Image: img}
}

// Crop trims s to the tight bounding box of its foreground pixels. An
// all-background image crops to a 0x0 shape.
func (s Shape) Crop() Shape {
	var bound Rect
	for y := 0; y < s.Image.Height; y++ {
		for x := 0; x < s.Image.Width; x++ {
			if s.Image.Get(x, y) {
				bound = bound.AddPoint(PointI32{X: x, Y: y})
			}
		}
	}
	return Shape{Image: s.Image.Crop(bound)}
}

// Rotate returns s rotated by angle radians about its center, resampled
// with bilinear interpolation and re-binarized at the midpoint gray
// level. It backs the finder's six-rotation ellipse test, which must
// tolerate a candidate circle photographed under perspective distortion
// at an unknown rotation.
func (s Shape) Rotate(angle float64) Shape {
	w, h := s.Image.Width, s.Image.Height
	if w == 0 || h == 0 {
		return s
	}

	src := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if s.Image.Get(x, y) {
				v = 255
			}
			src.SetGray(x, y, color.Gray{Y: v})
		}
	}

	cx, cy := float64(w)/2, float64(h)/2
	cos, sin := math.Cos(angle), math.Sin(angle)

	// s2d maps source pixel coordinates to destination pixel coordinates
	// (the direction draw.Transform expects), rotating about the image
	// center. Destination pixels whose source falls outside the image
	// stay background.
	s2d := f64.Aff3{
		cos, sin, cx - cos*cx - sin*cy,
		-sin, cos, cy + sin*cx - cos*cy,
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.BiLinear.Transform(dst, s2d, src, src.Bounds(), draw.Src, nil)

	out := NewBinaryImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, dst.GrayAt(x, y).Y >= 128)
		}
	}
	return Shape{Image: out}
}

// IsEllipse reports whether s's foreground region is round enough to
// plausibly be a finder mark under perspective distortion: its filled
// area must be close to the area of the ellipse inscribed in its tight
// bounding box. ellipseAreaTolerance is the allowed fractional deviation.
const ellipseAreaTolerance = 0.22

func (s Shape) IsEllipse() bool {
	cropped := s.Crop()
	w, h := cropped.Image.Width, cropped.Image.Height
	if w == 0 || h == 0 {
		return false
	}
	area := cropped.Image.Area()
	expected := math.Pi / 4 * float64(w) * float64(h)
	deviation := math.Abs(float64(area)-expected) / expected
	return deviation <= ellipseAreaTolerance
}
