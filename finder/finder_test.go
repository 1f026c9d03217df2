package finder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/finder"
	"github.com/symcode/symcode/geom"
)

func paintCircle(img geom.ColorImage, cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := float64(x-cx), float64(y-cy)
			if dx*dx+dy*dy <= float64(r*r) {
				img.Set(x, y, geom.Color{R: 0, G: 0, B: 0, A: 255})
			}
		}
	}
}

func blankFrame(w, h int) geom.ColorImage {
	img := geom.NewColorImage(w, h)
	for i := range img.Pixels {
		img.Pixels[i] = geom.Color{R: 255, G: 255, B: 255, A: 255}
	}
	return img
}

func TestLocateFindsFourCircularMarks(t *testing.T) {
	frame := blankFrame(200, 200)
	paintCircle(frame, 30, 30, 12)
	paintCircle(frame, 170, 30, 12)
	paintCircle(frame, 30, 170, 12)
	paintCircle(frame, 170, 170, 12)

	rects, err := finder.Locate(frame, 8)
	require.NoError(t, err)
	require.Len(t, rects, 4)
}

func TestLocateTooFewCandidates(t *testing.T) {
	frame := blankFrame(100, 100)
	paintCircle(frame, 50, 50, 10)

	_, err := finder.Locate(frame, 8)
	require.ErrorIs(t, err, finder.ErrTooFewCandidates)
}

func TestLocateTooManyCandidates(t *testing.T) {
	frame := blankFrame(300, 300)
	positions := [][2]int{{30, 30}, {90, 30}, {150, 30}, {210, 30}, {270, 30}, {30, 90}}
	for _, p := range positions {
		paintCircle(frame, p[0], p[1], 10)
	}

	_, err := finder.Locate(frame, 4)
	require.ErrorIs(t, err, finder.ErrTooManyCandidates)
}
