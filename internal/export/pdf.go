package export

import (
	"bytes"
	"fmt"
	"image"

	"rajubill/internal/domain"
	apperrors "rajubill/internal/errors"

	"github.com/jung-kurt/gofpdf"
)

// BuildPDF embeds a captured image into a single-page PDF. The page is
// pageWidthMM wide and the height follows the capture's aspect ratio
// (pageHeight = sourceHeight * pageWidth / sourceWidth), with the image
// placed at the page origin.
func BuildPDF(img image.Image, pageWidthMM float64) ([]byte, error) {
	pngData, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	srcW := float64(bounds.Dx())
	srcH := float64(bounds.Dy())
	if srcW <= 0 || srcH <= 0 {
		return nil, apperrors.NewPdfBuildError("capture has no size", nil)
	}

	pageHeightMM := srcH * pageWidthMM / srcW

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidthMM, Ht: pageHeightMM},
	})
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("bill", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("bill", 0, 0, pageWidthMM, pageHeightMM, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.NewPdfBuildError("writing pdf", err)
	}
	return buf.Bytes(), nil
}

// FileName is the fixed naming convention for exported PDFs.
func FileName(bill domain.Bill) string {
	return fmt.Sprintf("%s %s.pdf", bill.OrderNumber, bill.Customer)
}

// SummaryText is the short message that accompanies a shared bill.
func SummaryText(bill domain.Bill) string {
	return fmt.Sprintf("Order #: %s\nCustomer: %s\nProduct: %s",
		bill.OrderNumber, bill.Customer, bill.Product)
}
