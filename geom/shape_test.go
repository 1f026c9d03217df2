package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/geom"
)

func TestCircleIsEllipse(t *testing.T) {
	shape := geom.Circle(40, 40)
	require.True(t, shape.IsEllipse())
}

func TestCircleSurvivesRotation(t *testing.T) {
	shape := geom.Circle(40, 40)
	rotated := shape.Rotate(0.3).Crop()
	require.True(t, rotated.IsEllipse())
}

func TestSquareIsNotEllipse(t *testing.T) {
	img := geom.NewBinaryImage(20, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, true)
		}
	}
	require.False(t, geom.NewShape(img).IsEllipse())
}

func TestShapeCropEmpty(t *testing.T) {
	img := geom.NewBinaryImage(5, 5)
	cropped := geom.NewShape(img).Crop()
	require.Equal(t, 0, cropped.Image.Width)
	require.Equal(t, 0, cropped.Image.Height)
}
