package export

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rajubill/internal/errors"
)

func TestCapture_CanvasDimensions(t *testing.T) {
	view := Document(sampleBill())

	img, err := Capture(view)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, captureWidth, bounds.Dx())
	assert.Equal(t, captureMargin*2+lineHeight*len(view.Lines()), bounds.Dy())
}

func TestCapture_DrawsOnWhiteBackground(t *testing.T) {
	img, err := Capture(Document(sampleBill()))
	require.NoError(t, err)

	// Top-left corner is margin, never text.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))

	// Some pixel must be dark, otherwise nothing was drawn.
	dark := false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !dark; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R < 128 && c.G < 128 && c.B < 128 {
				dark = true
				break
			}
		}
	}
	assert.True(t, dark, "capture contains no drawn text")
}

func TestCapture_EmptyViewFails(t *testing.T) {
	img, err := Capture(DocumentView{})

	assert.Nil(t, img)
	_, ok := apperrors.IsCaptureError(err)
	assert.True(t, ok)
}

func TestEncodePNG_NilImageFails(t *testing.T) {
	data, err := EncodePNG(nil)

	assert.Nil(t, data)
	_, ok := apperrors.IsCaptureError(err)
	assert.True(t, ok)
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	img, err := Capture(Document(sampleBill()))
	require.NoError(t, err)

	data, err := EncodePNG(img)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
