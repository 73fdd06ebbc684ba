package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"chenu2/internal/models"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

const estimateBucket = "estimates"

// EstimatePdfService renders a quote document and stores it in object
// storage. The document is a pure rendering of the caller-supplied figures;
// no pricing happens here.
type EstimatePdfService interface {
	// Generate renders the PDF, uploads it and returns a presigned download
	// URL valid for 24 hours.
	Generate(ctx context.Context, req *models.EstimatePdfRequest) (string, error)
}

type estimatePdfService struct {
	storage MinioService
	// path to a CJK-capable TTF; the built-in core fonts cannot render
	// Korean product names
	fontPath string
}

func NewEstimatePdfService(storage MinioService, fontPath string) EstimatePdfService {
	return &estimatePdfService{storage: storage, fontPath: fontPath}
}

func (s *estimatePdfService) Generate(ctx context.Context, req *models.EstimatePdfRequest) (string, error) {
	pdfBytes, err := s.render(req)
	if err != nil {
		return "", fmt.Errorf("render estimate pdf: %w", err)
	}

	if err := s.storage.EnsureBucketExists(ctx, estimateBucket); err != nil {
		return "", fmt.Errorf("ensure estimate bucket: %w", err)
	}

	objectName := fmt.Sprintf("estimate-%s.pdf", uuid.New().String())
	if err := s.storage.UploadDocument(ctx, estimateBucket, objectName, "application/pdf", bytes.NewReader(pdfBytes), int64(len(pdfBytes))); err != nil {
		return "", fmt.Errorf("upload estimate pdf: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, estimateBucket, objectName, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("presign estimate pdf: %w", err)
	}
	return url, nil
}

func (s *estimatePdfService) render(req *models.EstimatePdfRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	fontName := "Arial"
	if s.fontPath != "" {
		fontName = "estimate"
		pdf.AddUTF8Font(fontName, "", s.fontPath)
		pdf.AddUTF8Font(fontName, "B", s.fontPath)
	}

	pdf.AddPage()
	marginX := 15.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont(fontName, "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(0, 10, req.CompanyName)
	pdf.Ln(12)

	pdf.SetFont(fontName, "", 10)
	if req.CustomerName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", req.CustomerName))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", req.DateStr))
	pdf.Ln(10)

	// Items table
	pdf.SetFont(fontName, "B", 9)
	pdf.SetFillColor(240, 240, 240)
	headers := []string{"Item", "Spec", "Size", "Qty", "Unit", "Options", "Total"}
	colWidths := []float64{50, 30, 25, 12, 22, 18, 23}
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont(fontName, "", 9)
	pdf.SetFillColor(255, 255, 255)
	for _, item := range req.Items {
		size := ""
		if item.Width != "" || item.Height != "" {
			size = fmt.Sprintf("%s x %s", item.Width, item.Height)
		}
		spec := item.SpecName
		if item.TypeName != "" {
			if spec != "" {
				spec += " / "
			}
			spec += item.TypeName
		}

		pdf.CellFormat(colWidths[0], 7, s.itemLabel(item), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, spec, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, size, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[4], 7, formatWon(int64(item.UnitPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[5], 7, formatWon(int64(item.OptionPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[6], 7, formatWon(item.FinalTotal), "1", 0, "R", false, 0, "")
		pdf.Ln(7)

		if len(item.SelectedOptions) > 0 || item.ColorCostInfo != "" {
			notes := strings.Join(item.SelectedOptions, ", ")
			if item.ColorCostInfo != "" {
				if notes != "" {
					notes += " / "
				}
				notes += item.ColorCostInfo
			}
			pdf.SetFont(fontName, "", 7)
			pdf.CellFormat(0, 5, "  "+notes, "", 0, "L", false, 0, "")
			pdf.Ln(5)
			pdf.SetFont(fontName, "", 9)
		}
	}

	pdf.Ln(6)
	pdf.SetFont(fontName, "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Subtotal: %s", formatWon(req.BaseTotal)), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	if req.TotalMargin != 0 {
		label := "Margin"
		if req.MarginPercent != "" {
			label = fmt.Sprintf("Margin (%s%%)", req.MarginPercent)
		}
		pdf.CellFormat(0, 7, fmt.Sprintf("%s: %s", label, formatWon(req.TotalMargin)), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total: %s", formatWon(req.TotalPrice)), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *estimatePdfService) itemLabel(item models.EstimatePdfItem) string {
	label := item.ProductName
	if item.ColorName != "" {
		label += " (" + item.ColorName + ")"
	}
	return label
}

// formatWon renders an amount with thousands separators, e.g. 1,234,500.
func formatWon(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
