package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	apperrors "rajubill/internal/errors"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	captureWidth  = 800
	captureMargin = 24
	lineHeight    = 22
)

// Capture rasterizes a document view onto an in-memory canvas, the same
// snapshot step the share and print flows both feed from.
func Capture(view DocumentView) (*image.RGBA, error) {
	if len(view.Rows) == 0 {
		return nil, apperrors.NewCaptureError("document view is empty", nil)
	}
	lines := view.Lines()

	height := captureMargin*2 + lineHeight*len(lines)
	canvas := image.NewRGBA(image.Rect(0, 0, captureWidth, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	headerCount := len(view.Header)
	y := captureMargin + lineHeight
	for i, line := range lines {
		x := captureMargin
		if i < headerCount {
			// Header lines are centered like the printed document.
			width := font.MeasureString(face, line).Ceil()
			if width < captureWidth {
				x = (captureWidth - width) / 2
			}
		}
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(line)
		y += lineHeight
	}

	return canvas, nil
}

// EncodePNG serializes a captured canvas for PDF embedding.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, apperrors.NewCaptureError("rendering surface unavailable", nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, apperrors.NewCaptureError("encoding capture", err)
	}
	return buf.Bytes(), nil
}
