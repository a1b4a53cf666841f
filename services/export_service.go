package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/thyeshengleng/collection-form/models"
)

// ExportService renders records as printable documents
type ExportService interface {
	JobOrderPDF(w io.Writer, record models.Record) error
}

type exportService struct{}

// NewExportService creates a new export service
func NewExportService() ExportService {
	return &exportService{}
}

type pdfSection struct {
	title  string
	fields [][2]string
}

const (
	pdfMargin     = 25.4
	pdfLabelWidth = 55.0
	pdfValueWidth = 104.2
	pdfLineHeight = 7.0
)

func jobOrderSections(r models.Record) []pdfSection {
	return []pdfSection{
		{
			title: "Company Information",
			fields: [][2]string{
				{"Company Name:", r.CompanyName},
				{"Email:", r.Email},
				{"Address:", r.Address},
				{"Business Info:", r.BusinessInfo},
				{"Tax ID:", r.TaxID},
			},
		},
		{
			title: "Module Information",
			fields: [][2]string{
				{"Plug In Module:", r.PlugInModule},
				{"Module & User License:", r.ModuleLicense},
				{"VPN Info:", r.VPNInfo},
			},
		},
		{
			title: "Report and Migration Details",
			fields: [][2]string{
				{"Report Design Template:", r.ReportTemplate},
				{"Migration Master Data:", r.MigrationMasterData},
				{"Migration Outstanding Balance:", r.MigrationOutstandingBalance},
			},
		},
		{
			title: "Status Information",
			fields: [][2]string{
				{"Current Status:", r.Status},
			},
		},
	}
}

// JobOrderPDF writes an A4 job order sheet for one record
func (s *exportService) JobOrderPDF(w io.Writer, record models.Record) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("Job Order - "+record.CompanyName, true)
	pdf.SetCreator("collection-form", true)
	pdf.AddPage()

	// Core fonts are cp1252. Characters outside it print as "?".
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "Job Order Details", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	for _, section := range jobOrderSections(record) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(128, 128, 128)
		pdf.SetTextColor(245, 245, 245)
		pdf.CellFormat(pdfLabelWidth+pdfValueWidth, 9, section.title, "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		for _, field := range section.fields {
			writeFieldRow(pdf, field[0], tr(field[1]))
		}
		pdf.Ln(6)
	}

	if pdf.Err() {
		return fmt.Errorf("failed to render pdf: %w", pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// writeFieldRow draws a label cell and a value cell that wraps long text
func writeFieldRow(pdf *fpdf.Fpdf, label, value string) {
	// value is cp1252, so split on bytes rather than runes
	lines := pdf.SplitLines([]byte(value), pdfValueWidth-2)
	if len(lines) == 0 {
		lines = [][]byte{nil}
	}
	height := float64(len(lines)) * pdfLineHeight

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+height > pageHeight-bottom {
		pdf.AddPage()
	}

	x, y := pdf.GetXY()
	pdf.CellFormat(pdfLabelWidth, height, label, "1", 0, "L", false, 0, "")
	pdf.MultiCell(pdfValueWidth, pdfLineHeight, string(bytes.Join(lines, []byte("\n"))), "1", "L", false)
	pdf.SetXY(x, y+height)
}
