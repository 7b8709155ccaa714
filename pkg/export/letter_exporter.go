package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// LetterDocument carries the already-formatted fields of an
// authorization-request letter.
type LetterDocument struct {
	Code            string
	RefTitle        string
	City            string
	LetterDate      string
	AddresseeName   string
	AddresseeRole   string
	Institution     string
	InstitutionAddr string
	PracticeType    string
	Period          string
	Degree          string
	TutorName       string
	TutorPhone      string
	Students        []string
	Comments        string
	Signer          string
	SignerRole      string
	Attachments     []string
}

// LetterExporter renders authorization-request letters as PDF.
type LetterExporter struct{}

// NewLetterExporter constructs a letter exporter.
func NewLetterExporter() *LetterExporter {
	return &LetterExporter{}
}

// Render produces the letter PDF bytes.
func (e *LetterExporter) Render(doc LetterDocument) ([]byte, error) {
	if doc.RefTitle == "" || doc.Institution == "" {
		return nil, fmt.Errorf("letter requires a reference title and institution")
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	write := func(text string) {
		pdf.MultiCell(0, 5.5, translate(text), "", "L", false)
	}

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, translate(fmt.Sprintf("%s, %s", doc.City, doc.LetterDate)), "", 1, "R", false, 0, "")
	if doc.Code != "" {
		pdf.CellFormat(0, 6, translate(fmt.Sprintf("N° %s", doc.Code)), "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, translate(doc.RefTitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	write(fmt.Sprintf("Señor(a) %s", doc.AddresseeName))
	write(doc.AddresseeRole)
	write(doc.Institution)
	write(doc.InstitutionAddr)
	pdf.Ln(4)

	write(fmt.Sprintf(
		"Junto con saludar, solicitamos a usted autorización para que los(as) estudiantes de la carrera de %s realicen su %s en el establecimiento que usted dirige, durante el periodo %s.",
		doc.Degree, doc.PracticeType, doc.Period))
	pdf.Ln(3)

	for _, student := range doc.Students {
		write(student)
	}
	pdf.Ln(3)

	if doc.TutorName != "" {
		tutorLine := fmt.Sprintf("El proceso será acompañado por el(la) tutor(a) %s", doc.TutorName)
		if doc.TutorPhone != "" {
			tutorLine += fmt.Sprintf(" (fono %s)", doc.TutorPhone)
		}
		write(tutorLine + ".")
		pdf.Ln(3)
	}

	if doc.Comments != "" {
		write(doc.Comments)
		pdf.Ln(3)
	}

	if len(doc.Attachments) > 0 {
		pdf.SetFont("Arial", "B", 11)
		write("Se adjunta:")
		pdf.SetFont("Arial", "", 11)
		for _, attachment := range doc.Attachments {
			write("- " + attachment)
		}
		pdf.Ln(3)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, translate(doc.Signer), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, translate(doc.SignerRole), "", 1, "C", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render letter pdf: %w", err)
	}
	return buf.Bytes(), nil
}
