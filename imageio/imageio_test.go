package imageio_test

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/geom"
	"github.com/symcode/symcode/imageio"
)

func TestEncodeBinaryPNGRoundTripsThroughFromStdImage(t *testing.T) {
	src := geom.NewBinaryImage(4, 3)
	src.Set(0, 0, true)
	src.Set(3, 2, true)

	var buf bytes.Buffer
	require.NoError(t, imageio.EncodeBinaryPNG(&buf, src))

	decoded, _, err := image.Decode(&buf)
	require.NoError(t, err)

	color := imageio.FromStdImage(decoded)
	require.Equal(t, src.Width, color.Width)
	require.Equal(t, src.Height, color.Height)
	require.Equal(t, uint8(0), color.Get(0, 0).R)
	require.Equal(t, uint8(255), color.Get(1, 0).R)
	require.Equal(t, uint8(0), color.Get(3, 2).R)
}
